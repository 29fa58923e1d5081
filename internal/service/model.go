package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/rs/zerolog"
)

// modelService holds talent profile logic: validation + orchestration, no transport / SQL details.
type modelService struct {
	models   repository.ModelRepository
	archives repository.ArchiveRepository
	tx       repository.TxManager
	log      zerolog.Logger
}

func NewModelService(models repository.ModelRepository, archives repository.ArchiveRepository, tx repository.TxManager, logger zerolog.Logger) ModelService {
	l := logger.With().Str("module", "service").Str("component", "model").Logger()
	return &modelService{models: models, archives: archives, tx: tx, log: l}
}

func (s *modelService) ListModels(ctx context.Context, q listing.Query) (listing.Page[model.Model], error) {
	page, err := listing.Execute(ctx, s.models, q)
	if err != nil {
		s.log.Error().Err(err).Str("category", q.Filter.Value).Int("page", q.Page.Page).Int("limit", q.Page.Limit).Msg("list models failed")
		return listing.Page[model.Model]{}, err
	}
	return page, nil
}

func (s *modelService) GetModel(ctx context.Context, id string) (model.Model, error) {
	m, err := s.models.GetByID(ctx, id)
	if err != nil {
		return model.Model{}, orNotFound(err, "Model")
	}
	return s.withArchives(ctx, m)
}

func (s *modelService) GetModelBySlug(ctx context.Context, slug string) (model.Model, error) {
	m, err := s.models.GetBySlug(ctx, slug)
	if err != nil {
		return model.Model{}, orNotFound(err, "Model")
	}
	return s.withArchives(ctx, m)
}

// withArchives embeds the model's archives, newest first, for the detail view.
func (s *modelService) withArchives(ctx context.Context, m model.Model) (model.Model, error) {
	archives, err := s.archives.ListByModel(ctx, m.ID)
	if err != nil {
		s.log.Error().Err(err).Str("model_id", m.ID).Msg("load archives failed")
		return model.Model{}, err
	}
	if archives == nil {
		archives = []model.Archive{}
	}
	m.Archives = archives
	return m, nil
}

func (s *modelService) CreateModel(ctx context.Context, in ModelInput) (model.Model, error) {
	start := time.Now()
	in.normalize()
	if err := check(&in); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Str("slug_raw", in.Slug).Msg("model validation failed")
		return model.Model{}, err
	}

	out, err := s.models.Create(ctx, model.Model{
		Name:         in.Name,
		Slug:         in.Slug,
		Category:     model.Category(in.Category),
		Nationality:  in.Nationality,
		ProfileImage: in.ProfileImage,
		Images:       in.Images,
		Bio:          in.Bio,
		Height:       in.Height,
		Measurements: in.Measurements,
		Instagram:    in.Instagram,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.Model{}, alreadyExists("Slug already exists")
		}
		s.log.Error().Err(err).Str("slug", in.Slug).Msg("create model failed")
		return model.Model{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("model_id", out.ID).Str("slug", out.Slug).Msg("model created")
	return out, nil
}

func (s *modelService) UpdateModel(ctx context.Context, id string, in ModelPatch) (model.Model, error) {
	in.normalize()
	if err := check(&in); err != nil {
		return model.Model{}, err
	}

	var out model.Model
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.models.GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "Model")
		}
		in.applyTo(&current)
		out, err = s.models.Update(ctx, current)
		return err
	})
	switch {
	case err == nil:
		s.log.Info().Str("model_id", id).Msg("model updated")
		return out, nil
	case errors.Is(err, repository.ErrAlreadyExists):
		return model.Model{}, alreadyExists("Slug already exists")
	case errors.Is(err, repository.ErrNotFound):
		return model.Model{}, orNotFound(err, "Model")
	default:
		s.log.Error().Err(err).Str("model_id", id).Msg("update model failed")
		return model.Model{}, err
	}
}

// applyTo merges the fields present in the patch. Empty optional strings clear the column.
func (p ModelPatch) applyTo(m *model.Model) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Slug != nil {
		m.Slug = *p.Slug
	}
	if p.Category != nil {
		m.Category = model.Category(*p.Category)
	}
	if p.Images != nil {
		m.Images = *p.Images
	}
	setOptional(&m.Nationality, p.Nationality)
	setOptional(&m.ProfileImage, p.ProfileImage)
	setOptional(&m.Bio, p.Bio)
	setOptional(&m.Height, p.Height)
	setOptional(&m.Measurements, p.Measurements)
	setOptional(&m.Instagram, p.Instagram)
}

func setOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	val := *v
	*dst = &val
}

// DeleteModel removes the model and all of its archives in one transaction.
func (s *modelService) DeleteModel(ctx context.Context, id string) error {
	var removed int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.archives.DeleteByModel(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return s.models.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Model")
		}
		s.log.Error().Err(err).Str("model_id", id).Msg("delete model failed")
		return err
	}
	s.log.Info().Str("model_id", id).Int64("archives_removed", removed).Msg("model deleted")
	return nil
}
