// Package contract holds storage-agnostic behaviour suites. Each backend wires its
// own factories and runs them; today only Postgres does.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

type ModelFactory func(t *testing.T) (repository.ModelRepository, func())

type ArchiveFactory func(t *testing.T) (repo repository.ArchiveRepository, createModel func(ctx context.Context, slug string) (string, error), cleanup func())

type ApplicationFactory func(t *testing.T) (repository.ApplicationRepository, func())

type CastingFactory func(t *testing.T) (repository.CastingRepository, func())

type AdminFactory func(t *testing.T) (repository.AdminRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, models repository.ModelRepository, archives repository.ArchiveRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func newModel(slug string, cat model.Category) model.Model {
	return model.Model{Name: "Model " + slug, Slug: slug, Category: cat, Images: []string{}}
}

func page(p, limit int) listing.Window { return listing.PageRequest{Page: p, Limit: limit}.Window() }

func RunModelRepositoryContract(t *testing.T, makeRepo ModelFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		bio := "Runway and editorial"
		in := newModel("jane-doe", model.CategoryInTown)
		in.Bio = &bio
		in.Images = []string{"/uploads/a.jpg", "/uploads/b.jpg"}
		created, err := repo.Create(ctx, in)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamps: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Slug != "jane-doe" || got.Bio == nil || *got.Bio != bio || len(got.Images) != 2 {
			t.Fatalf("mismatch: %+v", got)
		}
		bySlug, err := repo.GetBySlug(ctx, "jane-doe")
		if err != nil || bySlug.ID != created.ID {
			t.Fatalf("get by slug: %+v err=%v", bySlug, err)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate_slug_already_exists", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, newModel("dup", model.CategoryAll)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, newModel("dup", model.CategoryAll))
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list_filter_and_pagination", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := range 5 {
			cat := model.CategoryInTown
			if i%2 == 1 {
				cat = model.CategoryUpcoming
			}
			if _, err := repo.Create(ctx, newModel(fmt.Sprintf("m-%d", i), cat)); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		total, err := repo.Count(ctx, listing.Filter{})
		if err != nil || total != 5 {
			t.Fatalf("count all: %d err=%v", total, err)
		}
		items, err := repo.Find(ctx, listing.Filter{}, page(2, 2))
		if err != nil || len(items) != 2 {
			t.Fatalf("page 2: len=%d err=%v", len(items), err)
		}
		if items[0].Slug != "m-2" {
			t.Fatalf("expected newest-first ordering, got %s", items[0].Slug)
		}
		inTown := listing.Category("INTOWN")
		n, err := repo.Count(ctx, inTown)
		if err != nil || n != 3 {
			t.Fatalf("count INTOWN: %d err=%v", n, err)
		}
		rows, err := repo.Find(ctx, inTown, page(1, 10))
		if err != nil {
			t.Fatalf("find INTOWN: %v", err)
		}
		for _, m := range rows {
			if m.Category != model.CategoryInTown {
				t.Fatalf("filter leaked %s", m.Category)
			}
		}
		none, err := repo.Count(ctx, listing.Category("NOPE"))
		if err != nil || none != 0 {
			t.Fatalf("unknown category should match nothing: %d err=%v", none, err)
		}
		beyond, err := repo.Find(ctx, listing.Filter{}, page(9, 2))
		if err != nil || len(beyond) != 0 {
			t.Fatalf("page beyond range: len=%d err=%v", len(beyond), err)
		}
	})

	t.Run("update_and_delete", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, newModel("before", model.CategoryAll))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		created.Slug = "after"
		updated, err := repo.Update(ctx, created)
		if err != nil || updated.Slug != "after" {
			t.Fatalf("update: %+v err=%v", updated, err)
		}
		if !updated.UpdatedAt.After(created.CreatedAt) && !updated.UpdatedAt.Equal(created.CreatedAt) {
			t.Fatalf("updated_at went backwards")
		}
		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if ok, _ := repo.Exists(ctx, created.ID); ok {
			t.Fatalf("expected model gone")
		}
		if err := repo.Delete(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("second delete: expected ErrNotFound, got %v", err)
		}
	})
}

func RunArchiveRepositoryContract(t *testing.T, makeRepo ArchiveFactory) {
	t.Helper()

	t.Run("create_embeds_model", func(t *testing.T) {
		repo, mkModel, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		modelID, err := mkModel(ctx, "owner")
		if err != nil {
			t.Fatalf("seed model: %v", err)
		}
		created, err := repo.Create(ctx, model.Archive{Title: "SS25", Images: []string{"/uploads/x.jpg"}, ModelID: modelID})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Model == nil || created.Model.ID != modelID || created.Model.Slug != "owner" {
			t.Fatalf("expected embedded model summary, got %+v", created.Model)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil || got.Model == nil || got.Title != "SS25" {
			t.Fatalf("get: %+v err=%v", got, err)
		}
	})

	t.Run("unknown_model_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Archive{Title: "Orphan", Images: []string{"/u.jpg"}, ModelID: "missing"})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("filter_by_model_and_delete_by_model", func(t *testing.T) {
		repo, mkModel, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		a, _ := mkModel(ctx, "a")
		b, _ := mkModel(ctx, "b")
		for i := range 3 {
			if _, err := repo.Create(ctx, model.Archive{Title: fmt.Sprintf("a-%d", i), Images: []string{"/u.jpg"}, ModelID: a}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		if _, err := repo.Create(ctx, model.Archive{Title: "b-0", Images: []string{"/u.jpg"}, ModelID: b}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		f := listing.Equal(listing.FieldModelID, a)
		n, err := repo.Count(ctx, f)
		if err != nil || n != 3 {
			t.Fatalf("count by model: %d err=%v", n, err)
		}
		rows, err := repo.Find(ctx, f, page(1, 2))
		if err != nil || len(rows) != 2 {
			t.Fatalf("find by model: len=%d err=%v", len(rows), err)
		}
		all, err := repo.ListByModel(ctx, a)
		if err != nil || len(all) != 3 || all[0].Title != "a-2" {
			t.Fatalf("list by model: %+v err=%v", all, err)
		}
		removed, err := repo.DeleteByModel(ctx, a)
		if err != nil || removed != 3 {
			t.Fatalf("delete by model: %d err=%v", removed, err)
		}
		left, _ := repo.Count(ctx, listing.Filter{})
		if left != 1 {
			t.Fatalf("expected 1 archive left, got %d", left)
		}
	})
}

func RunApplicationRepositoryContract(t *testing.T, makeRepo ApplicationFactory) {
	t.Helper()

	t.Run("create_defaults_pending", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Application{
			Name: "Ann", Email: "ann@example.com", Phone: "+1 555", Age: 21, Height: "178", Weight: "55",
			Portfolio: []string{"https://example.com/p1.jpg"},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Status != model.ApplicationPending || len(created.Portfolio) != 1 {
			t.Fatalf("unexpected row: %+v", created)
		}
	})

	t.Run("status_filter_update_delete", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var ids []string
		for i := range 4 {
			a, err := repo.Create(ctx, model.Application{Name: fmt.Sprintf("A%d", i), Email: "a@example.com", Phone: "1", Age: 20, Height: "1", Weight: "1"})
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
			ids = append(ids, a.ID)
		}
		updated, err := repo.UpdateStatus(ctx, ids[0], model.ApplicationReviewed)
		if err != nil || updated.Status != model.ApplicationReviewed {
			t.Fatalf("update status: %+v err=%v", updated, err)
		}
		n, err := repo.Count(ctx, listing.Equal(listing.FieldStatus, "PENDING"))
		if err != nil || n != 3 {
			t.Fatalf("count pending: %d err=%v", n, err)
		}
		if _, err := repo.UpdateStatus(ctx, "missing", model.ApplicationReviewed); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, ids[1]); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, ids[1]); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func RunCastingRepositoryContract(t *testing.T, makeRepo CastingFactory) {
	t.Helper()

	t.Run("create_with_shoot_date", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		shoot := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		created, err := repo.Create(ctx, model.Casting{
			Company: "Acme", ContactName: "Bo", Email: "bo@acme.com", Phone: "1", ProjectType: "Editorial",
			Description: "Spring lookbook", ShootDate: &shoot,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.Status != model.CastingPending || created.ShootDate == nil || !created.ShootDate.Equal(shoot) {
			t.Fatalf("unexpected row: %+v", created)
		}
		locked, err := repo.GetForUpdate(ctx, created.ID)
		if err != nil || locked.ID != created.ID {
			t.Fatalf("get for update: %+v err=%v", locked, err)
		}
	})

	t.Run("status_filter", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		c, err := repo.Create(ctx, model.Casting{Company: "A", ContactName: "B", Email: "b@a.com", Phone: "1", ProjectType: "X", Description: "Y"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.UpdateStatus(ctx, c.ID, model.CastingContacted); err != nil {
			t.Fatalf("update status: %v", err)
		}
		rows, err := repo.Find(ctx, listing.Equal(listing.FieldStatus, "CONTACTED"), page(1, 20))
		if err != nil || len(rows) != 1 {
			t.Fatalf("find contacted: len=%d err=%v", len(rows), err)
		}
	})
}

func RunAdminRepositoryContract(t *testing.T, makeRepo AdminFactory) {
	t.Helper()

	t.Run("create_and_lookup", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Admin{Email: "admin@agency.test", PasswordHash: "$2a$10$x"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetByEmail(ctx, "Admin@Agency.test")
		if err != nil || got.ID != created.ID || got.PasswordHash != "$2a$10$x" {
			t.Fatalf("get by email: %+v err=%v", got, err)
		}
		if _, err := repo.GetByID(ctx, created.ID); err != nil {
			t.Fatalf("get by id: %v", err)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.Admin{Email: "dup@agency.test", PasswordHash: "h"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, model.Admin{Email: "dup@agency.test", PasswordHash: "h"})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, models, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := models.Create(ctx, newModel("tx-commit", model.CategoryAll))
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := models.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, models, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		errMarker := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := models.Create(ctx, newModel("tx-rollback", model.CategoryAll))
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := models.GetByID(ctx, createdID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected rolled back row to be absent, got %v", err)
		}
	})

	t.Run("cascade_delete_in_one_tx", func(t *testing.T) {
		tx, models, archives, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		m, err := models.Create(ctx, newModel("cascade", model.CategoryAll))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		a, err := archives.Create(ctx, model.Archive{Title: "t", Images: []string{"/u.jpg"}, ModelID: m.ID})
		if err != nil {
			t.Fatalf("seed archive: %v", err)
		}
		err = tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := archives.DeleteByModel(ctx, m.ID); err != nil {
				return err
			}
			return models.Delete(ctx, m.ID)
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := archives.GetByID(ctx, a.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected archive gone, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
