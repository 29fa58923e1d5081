package service_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

var discard = zerolog.New(io.Discard)

// fakeTx runs the unit of work inline and counts how often it was asked to.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

// store is a tiny ordered map shared by the fake repositories; newest rows come first.
type store[T any] struct {
	mu   sync.Mutex
	seq  int
	ids  []string
	rows map[string]T
}

func newStore[T any]() *store[T] { return &store[T]{rows: map[string]T{}} }

func (s *store[T]) nextID() string {
	s.seq++
	return fmt.Sprintf("id-%03d", s.seq)
}

func (s *store[T]) put(id string, v T) {
	if _, ok := s.rows[id]; !ok {
		s.ids = append([]string{id}, s.ids...)
	}
	s.rows[id] = v
}

func (s *store[T]) remove(id string) bool {
	if _, ok := s.rows[id]; !ok {
		return false
	}
	delete(s.rows, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *store[T]) matching(keep func(T) bool) []T {
	out := []T{}
	for _, id := range s.ids {
		if v := s.rows[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func window[T any](all []T, w listing.Window) []T {
	if w.Offset >= len(all) {
		return []T{}
	}
	return all[w.Offset:min(w.Offset+w.Limit, len(all))]
}

type fakeModels struct {
	*store[model.Model]
	createErr error
}

func newFakeModels() *fakeModels { return &fakeModels{store: newStore[model.Model]()} }

func (f *fakeModels) keep(flt listing.Filter) func(model.Model) bool {
	return func(m model.Model) bool { return flt.IsZero() || string(m.Category) == flt.Value }
}

func (f *fakeModels) Count(_ context.Context, flt listing.Filter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matching(f.keep(flt))), nil
}

func (f *fakeModels) Find(_ context.Context, flt listing.Filter, w listing.Window) ([]model.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return window(f.matching(f.keep(flt)), w), nil
}

func (f *fakeModels) slugTaken(slug, except string) bool {
	for id, m := range f.rows {
		if m.Slug == slug && id != except {
			return true
		}
	}
	return false
}

func (f *fakeModels) Create(_ context.Context, m model.Model) (model.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.Model{}, f.createErr
	}
	if f.slugTaken(m.Slug, "") {
		return model.Model{}, repository.ErrAlreadyExists
	}
	m.ID = f.nextID()
	m.CreatedAt, m.UpdatedAt = time.Now(), time.Now()
	f.put(m.ID, m)
	return m, nil
}

func (f *fakeModels) GetByID(_ context.Context, id string) (model.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok {
		return model.Model{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeModels) GetBySlug(_ context.Context, slug string) (model.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.rows {
		if m.Slug == slug {
			return m, nil
		}
	}
	return model.Model{}, repository.ErrNotFound
}

func (f *fakeModels) Update(_ context.Context, m model.Model) (model.Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[m.ID]; !ok {
		return model.Model{}, repository.ErrNotFound
	}
	if f.slugTaken(m.Slug, m.ID) {
		return model.Model{}, repository.ErrAlreadyExists
	}
	m.UpdatedAt = time.Now()
	f.put(m.ID, m)
	return m, nil
}

func (f *fakeModels) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeModels) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[id]
	return ok, nil
}

type fakeArchives struct {
	*store[model.Archive]
	models *fakeModels
}

func newFakeArchives(models *fakeModels) *fakeArchives {
	return &fakeArchives{store: newStore[model.Archive](), models: models}
}

func (f *fakeArchives) keep(flt listing.Filter) func(model.Archive) bool {
	return func(a model.Archive) bool { return flt.IsZero() || a.ModelID == flt.Value }
}

// withModel mimics the join the SQL repository performs on every read.
func (f *fakeArchives) withModel(a model.Archive) model.Archive {
	if m, ok := f.models.rows[a.ModelID]; ok {
		a.Model = &model.ModelSummary{ID: m.ID, Name: m.Name, Slug: m.Slug, ProfileImage: m.ProfileImage}
	}
	return a
}

func (f *fakeArchives) Count(_ context.Context, flt listing.Filter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matching(f.keep(flt))), nil
}

func (f *fakeArchives) Find(_ context.Context, flt listing.Filter, w listing.Window) ([]model.Archive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := window(f.matching(f.keep(flt)), w)
	for i := range rows {
		rows[i] = f.withModel(rows[i])
	}
	return rows, nil
}

func (f *fakeArchives) Create(_ context.Context, a model.Archive) (model.Archive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.models.rows[a.ModelID]; !ok {
		return model.Archive{}, repository.ErrConflict
	}
	a.ID = f.nextID()
	a.CreatedAt, a.UpdatedAt = time.Now(), time.Now()
	f.put(a.ID, a)
	return f.withModel(a), nil
}

func (f *fakeArchives) GetByID(_ context.Context, id string) (model.Archive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return model.Archive{}, repository.ErrNotFound
	}
	return f.withModel(a), nil
}

func (f *fakeArchives) ListByModel(_ context.Context, modelID string) ([]model.Archive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.matching(func(a model.Archive) bool { return a.ModelID == modelID }), nil
}

func (f *fakeArchives) Update(_ context.Context, a model.Archive) (model.Archive, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[a.ID]; !ok {
		return model.Archive{}, repository.ErrNotFound
	}
	a.Model = nil
	f.put(a.ID, a)
	return f.withModel(a), nil
}

func (f *fakeArchives) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeArchives) DeleteByModel(_ context.Context, modelID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.matching(func(a model.Archive) bool { return a.ModelID == modelID }) {
		f.remove(a.ID)
		n++
	}
	return n, nil
}

type fakeApplications struct {
	*store[model.Application]
	updates int
}

func newFakeApplications() *fakeApplications {
	return &fakeApplications{store: newStore[model.Application]()}
}

func (f *fakeApplications) keep(flt listing.Filter) func(model.Application) bool {
	return func(a model.Application) bool { return flt.IsZero() || string(a.Status) == flt.Value }
}

func (f *fakeApplications) Count(_ context.Context, flt listing.Filter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matching(f.keep(flt))), nil
}

func (f *fakeApplications) Find(_ context.Context, flt listing.Filter, w listing.Window) ([]model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return window(f.matching(f.keep(flt)), w), nil
}

func (f *fakeApplications) Create(_ context.Context, a model.Application) (model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = f.nextID()
	f.put(a.ID, a)
	return a, nil
}

func (f *fakeApplications) GetByID(_ context.Context, id string) (model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return model.Application{}, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeApplications) GetForUpdate(ctx context.Context, id string) (model.Application, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeApplications) UpdateStatus(_ context.Context, id string, st model.ApplicationStatus) (model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return model.Application{}, repository.ErrNotFound
	}
	f.updates++
	a.Status = st
	f.put(id, a)
	return a, nil
}

func (f *fakeApplications) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

type fakeCastings struct {
	*store[model.Casting]
}

func newFakeCastings() *fakeCastings { return &fakeCastings{store: newStore[model.Casting]()} }

func (f *fakeCastings) keep(flt listing.Filter) func(model.Casting) bool {
	return func(c model.Casting) bool { return flt.IsZero() || string(c.Status) == flt.Value }
}

func (f *fakeCastings) Count(_ context.Context, flt listing.Filter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.matching(f.keep(flt))), nil
}

func (f *fakeCastings) Find(_ context.Context, flt listing.Filter, w listing.Window) ([]model.Casting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return window(f.matching(f.keep(flt)), w), nil
}

func (f *fakeCastings) Create(_ context.Context, c model.Casting) (model.Casting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID()
	f.put(c.ID, c)
	return c, nil
}

func (f *fakeCastings) GetByID(_ context.Context, id string) (model.Casting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return model.Casting{}, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeCastings) GetForUpdate(ctx context.Context, id string) (model.Casting, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCastings) UpdateStatus(_ context.Context, id string, st model.CastingStatus) (model.Casting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return model.Casting{}, repository.ErrNotFound
	}
	c.Status = st
	f.put(id, c)
	return c, nil
}

func (f *fakeCastings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

type fakeAdmins struct {
	*store[model.Admin]
}

func newFakeAdmins() *fakeAdmins { return &fakeAdmins{store: newStore[model.Admin]()} }

func (f *fakeAdmins) Create(_ context.Context, a model.Admin) (model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rows {
		if existing.Email == a.Email {
			return model.Admin{}, repository.ErrAlreadyExists
		}
	}
	a.ID = f.nextID()
	f.put(a.ID, a)
	return a, nil
}

func (f *fakeAdmins) GetByID(_ context.Context, id string) (model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok {
		return model.Admin{}, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.rows {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Admin{}, repository.ErrNotFound
}

var (
	_ repository.ModelRepository       = (*fakeModels)(nil)
	_ repository.ArchiveRepository     = (*fakeArchives)(nil)
	_ repository.ApplicationRepository = (*fakeApplications)(nil)
	_ repository.CastingRepository     = (*fakeCastings)(nil)
	_ repository.AdminRepository       = (*fakeAdmins)(nil)
	_ repository.TxManager             = (*fakeTx)(nil)
)

func ptr[T any](v T) *T { return &v }
