package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/maxviazov/talent-agency-service/internal/service"
)

func newArchiveSvc(t *testing.T) (service.ArchiveService, *fakeModels, *fakeArchives) {
	t.Helper()
	models := newFakeModels()
	archives := newFakeArchives(models)
	return service.NewArchiveService(archives, models, &fakeTx{}, discard), models, archives
}

func seedModel(t *testing.T, models *fakeModels, slug string) model.Model {
	t.Helper()
	m, err := models.Create(context.Background(), model.Model{Name: slug, Slug: slug, Category: model.CategoryInTown})
	require.NoError(t, err)
	return m
}

func TestArchiveService_CreateArchive(t *testing.T) {
	svc, models, _ := newArchiveSvc(t)
	m := seedModel(t, models, "anna-k")

	out, err := svc.CreateArchive(context.Background(), service.ArchiveInput{
		Title:   " Vogue Italia ",
		Brand:   ptr(""),
		Images:  []string{"https://cdn.example.com/1.jpg", "/uploads/2.jpg"},
		ModelID: m.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vogue Italia", out.Title)
	assert.Nil(t, out.Brand)
	require.NotNil(t, out.Model)
	assert.Equal(t, "anna-k", out.Model.Slug)
}

func TestArchiveService_CreateArchive_Validation(t *testing.T) {
	svc, _, _ := newArchiveSvc(t)

	_, err := svc.CreateArchive(context.Background(), service.ArchiveInput{Images: []string{}})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fields := fieldsOf(err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "modelId")
	assert.Contains(t, fields, "images")
}

func TestArchiveService_CreateArchive_UnknownModel(t *testing.T) {
	svc, _, archives := newArchiveSvc(t)

	_, err := svc.CreateArchive(context.Background(), service.ArchiveInput{
		Title: "Vogue", Images: []string{"/uploads/1.jpg"}, ModelID: "ghost",
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "Model not found", err.Error())
	assert.Empty(t, archives.rows)
}

func TestArchiveService_UpdateArchive(t *testing.T) {
	svc, models, _ := newArchiveSvc(t)
	ctx := context.Background()
	a := seedModel(t, models, "anna-k")
	b := seedModel(t, models, "bella")

	created, err := svc.CreateArchive(ctx, service.ArchiveInput{Title: "Vogue", Brand: ptr("Prada"), Images: []string{"/uploads/1.jpg"}, ModelID: a.ID})
	require.NoError(t, err)

	out, err := svc.UpdateArchive(ctx, created.ID, service.ArchivePatch{ModelID: ptr(b.ID), Brand: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, b.ID, out.ModelID)
	assert.Equal(t, "bella", out.Model.Slug)
	assert.Nil(t, out.Brand)
	assert.Equal(t, "Vogue", out.Title)

	_, err = svc.UpdateArchive(ctx, created.ID, service.ArchivePatch{ModelID: ptr("ghost")})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "Model not found", err.Error())

	_, err = svc.UpdateArchive(ctx, "missing", service.ArchivePatch{Title: ptr("X")})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "Archive not found", err.Error())
}

func TestArchiveService_ListAndDelete(t *testing.T) {
	svc, models, _ := newArchiveSvc(t)
	ctx := context.Background()
	a := seedModel(t, models, "anna-k")
	b := seedModel(t, models, "bella")
	for _, owner := range []string{a.ID, b.ID, a.ID} {
		_, err := svc.CreateArchive(ctx, service.ArchiveInput{Title: "Shoot", Images: []string{"/uploads/1.jpg"}, ModelID: owner})
		require.NoError(t, err)
	}

	page, err := svc.ListArchives(ctx, listing.Query{Filter: listing.Equal(listing.FieldModelID, a.ID), Page: listing.PageRequest{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.Total)
	for _, it := range page.Items {
		assert.Equal(t, "anna-k", it.Model.Slug)
	}

	id := page.Items[0].ID
	require.NoError(t, svc.DeleteArchive(ctx, id))
	_, err = svc.GetArchive(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteArchive(ctx, id), repository.ErrNotFound)
}
