package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/maxviazov/talent-agency-service/internal/service"
)

func validApplication() service.ApplicationInput {
	return service.ApplicationInput{
		Name: "Mia", Email: "mia@example.com", Phone: "+37120000000",
		Age: 19, Height: "176", Weight: "55",
		Portfolio: []string{"https://instagram.com/p/1"},
	}
}

func TestApplicationService_Submit(t *testing.T) {
	repo := newFakeApplications()
	svc := service.NewApplicationService(repo, &fakeTx{}, discard)

	out, err := svc.SubmitApplication(context.Background(), validApplication())
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationPending, out.Status)
	assert.NotNil(t, out.Portfolio)

	_, err = svc.SubmitApplication(context.Background(), service.ApplicationInput{Email: "nope", Age: -1})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fields := fieldsOf(err)
	for _, f := range []string{"name", "email", "phone", "age", "height", "weight"} {
		assert.Contains(t, fields, f)
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	repo := newFakeApplications()
	tx := &fakeTx{}
	svc := service.NewApplicationService(repo, tx, discard)
	ctx := context.Background()

	a, err := svc.SubmitApplication(ctx, validApplication())
	require.NoError(t, err)

	out, err := svc.UpdateApplicationStatus(ctx, a.ID, service.ApplicationStatusInput{Status: "REVIEWED"})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationReviewed, out.Status)

	// re-applying the current status is a no-op success
	out, err = svc.UpdateApplicationStatus(ctx, a.ID, service.ApplicationStatusInput{Status: "REVIEWED"})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationReviewed, out.Status)
	assert.Equal(t, 1, repo.updates)

	_, err = svc.UpdateApplicationStatus(ctx, a.ID, service.ApplicationStatusInput{Status: "PENDING"})
	require.ErrorIs(t, err, repository.ErrConflict)
	var svcErr *service.Error
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "invalid_transition", svcErr.Code)

	_, err = svc.UpdateApplicationStatus(ctx, a.ID, service.ApplicationStatusInput{Status: "ARCHIVED"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Contains(t, fieldsOf(err)["status"], "PENDING, REVIEWED, ACCEPTED, REJECTED")

	_, err = svc.UpdateApplicationStatus(ctx, "missing", service.ApplicationStatusInput{Status: "ACCEPTED"})
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "Application not found", err.Error())
	assert.Equal(t, 4, tx.calls)
}

func TestApplicationService_ListByStatus(t *testing.T) {
	repo := newFakeApplications()
	svc := service.NewApplicationService(repo, &fakeTx{}, discard)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		a, err := svc.SubmitApplication(ctx, validApplication())
		require.NoError(t, err)
		if i == 1 {
			_, err = svc.UpdateApplicationStatus(ctx, a.ID, service.ApplicationStatusInput{Status: "ACCEPTED"})
			require.NoError(t, err)
		}
	}

	page, err := svc.ListApplications(ctx, listing.Query{Filter: listing.Equal(listing.FieldStatus, "PENDING"), Page: listing.PageRequest{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.Total)

	page, err = svc.ListApplications(ctx, listing.Query{Filter: listing.Equal(listing.FieldStatus, "UNKNOWN"), Page: listing.PageRequest{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestApplicationService_Delete(t *testing.T) {
	svc := service.NewApplicationService(newFakeApplications(), &fakeTx{}, discard)
	ctx := context.Background()
	a, err := svc.SubmitApplication(ctx, validApplication())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteApplication(ctx, a.ID))
	_, err = svc.GetApplication(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteApplication(ctx, a.ID), repository.ErrNotFound)
}

func validCasting() service.CastingInput {
	return service.CastingInput{
		Company: "Acme Studio", ContactName: "Lee", Email: "lee@acme.test", Phone: "+1 555 0100",
		ProjectType: "Editorial", Description: "Spring lookbook",
	}
}

func TestCastingService_Submit(t *testing.T) {
	svc := service.NewCastingService(newFakeCastings(), &fakeTx{}, discard)
	ctx := context.Background()

	in := validCasting()
	in.ShootDate = ptr("2026-03-01T10:00:00+02:00")
	out, err := svc.SubmitCasting(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, model.CastingPending, out.Status)
	require.NotNil(t, out.ShootDate)
	assert.True(t, out.ShootDate.Equal(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, out.ShootDate.Location())

	in = validCasting()
	in.ShootDate = ptr("next tuesday")
	_, err = svc.SubmitCasting(ctx, in)
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Contains(t, fieldsOf(err), "shootDate")

	in = validCasting()
	in.ShootDate = ptr("  ")
	out, err = svc.SubmitCasting(ctx, in)
	require.NoError(t, err)
	assert.Nil(t, out.ShootDate)
}

func TestCastingService_Lifecycle(t *testing.T) {
	svc := service.NewCastingService(newFakeCastings(), &fakeTx{}, discard)
	ctx := context.Background()
	c, err := svc.SubmitCasting(ctx, validCasting())
	require.NoError(t, err)

	_, err = svc.UpdateCastingStatus(ctx, c.ID, service.CastingStatusInput{Status: "COMPLETED"})
	require.ErrorIs(t, err, repository.ErrConflict)

	for _, st := range []string{"CONTACTED", "IN_PROGRESS", "COMPLETED"} {
		out, err := svc.UpdateCastingStatus(ctx, c.ID, service.CastingStatusInput{Status: st})
		require.NoError(t, err)
		assert.Equal(t, model.CastingStatus(st), out.Status)
	}

	_, err = svc.UpdateCastingStatus(ctx, c.ID, service.CastingStatusInput{Status: "CANCELLED"})
	assert.ErrorIs(t, err, repository.ErrConflict, "completed is terminal")

	got, err := svc.GetCasting(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CastingCompleted, got.Status)

	page, err := svc.ListCastings(ctx, listing.Query{Filter: listing.Equal(listing.FieldStatus, "COMPLETED"), Page: listing.PageRequest{Page: 1, Limit: 20}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)

	require.NoError(t, svc.DeleteCasting(ctx, c.ID))
	_, err = svc.GetCasting(ctx, c.ID)
	assert.Equal(t, "Casting not found", err.Error())
}
