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

type archiveService struct {
	archives repository.ArchiveRepository
	models   repository.ModelRepository
	tx       repository.TxManager
	log      zerolog.Logger
}

func NewArchiveService(archives repository.ArchiveRepository, models repository.ModelRepository, tx repository.TxManager, logger zerolog.Logger) ArchiveService {
	l := logger.With().Str("module", "service").Str("component", "archive").Logger()
	return &archiveService{archives: archives, models: models, tx: tx, log: l}
}

func (s *archiveService) ListArchives(ctx context.Context, q listing.Query) (listing.Page[model.Archive], error) {
	page, err := listing.Execute(ctx, s.archives, q)
	if err != nil {
		s.log.Error().Err(err).Str("model_id", q.Filter.Value).Int("page", q.Page.Page).Int("limit", q.Page.Limit).Msg("list archives failed")
		return listing.Page[model.Archive]{}, err
	}
	return page, nil
}

func (s *archiveService) GetArchive(ctx context.Context, id string) (model.Archive, error) {
	a, err := s.archives.GetByID(ctx, id)
	if err != nil {
		return model.Archive{}, orNotFound(err, "Archive")
	}
	return a, nil
}

// CreateArchive checks the owning model and inserts in one transaction. The
// foreign key backs the check up, so a model deleted in between still yields 404.
func (s *archiveService) CreateArchive(ctx context.Context, in ArchiveInput) (model.Archive, error) {
	start := time.Now()
	in.normalize()
	if err := check(&in); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("archive validation failed")
		return model.Archive{}, err
	}

	var out model.Archive
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireModel(ctx, in.ModelID); err != nil {
			return err
		}
		var err error
		out, err = s.archives.Create(ctx, model.Archive{Title: in.Title, Brand: in.Brand, Images: in.Images, ModelID: in.ModelID})
		return err
	})
	if err != nil {
		return model.Archive{}, s.archiveWriteError(err, "create archive failed", in.ModelID)
	}
	s.log.Info().Dur("took", time.Since(start)).Str("archive_id", out.ID).Str("model_id", out.ModelID).Msg("archive created")
	return out, nil
}

func (s *archiveService) UpdateArchive(ctx context.Context, id string, in ArchivePatch) (model.Archive, error) {
	in.normalize()
	if err := check(&in); err != nil {
		return model.Archive{}, err
	}

	var out model.Archive
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.archives.GetByID(ctx, id)
		if err != nil {
			return orNotFound(err, "Archive")
		}
		if in.ModelID != nil && *in.ModelID != current.ModelID {
			if err := s.requireModel(ctx, *in.ModelID); err != nil {
				return err
			}
			current.ModelID = *in.ModelID
		}
		if in.Title != nil {
			current.Title = *in.Title
		}
		if in.Images != nil {
			current.Images = *in.Images
		}
		setOptional(&current.Brand, in.Brand)
		out, err = s.archives.Update(ctx, current)
		return err
	})
	if err != nil {
		return model.Archive{}, s.archiveWriteError(err, "update archive failed", id)
	}
	s.log.Info().Str("archive_id", id).Msg("archive updated")
	return out, nil
}

func (s *archiveService) DeleteArchive(ctx context.Context, id string) error {
	if err := s.archives.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Archive")
		}
		s.log.Error().Err(err).Str("archive_id", id).Msg("delete archive failed")
		return err
	}
	s.log.Info().Str("archive_id", id).Msg("archive deleted")
	return nil
}

func (s *archiveService) requireModel(ctx context.Context, modelID string) error {
	ok, err := s.models.Exists(ctx, modelID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Model")
	}
	return nil
}

// archiveWriteError maps a foreign key violation on model_id to "Model not found".
func (s *archiveService) archiveWriteError(err error, msg, ref string) error {
	var svcErr *Error
	switch {
	case errors.As(err, &svcErr):
		return err
	case errors.Is(err, repository.ErrConflict):
		return notFound("Model")
	case errors.Is(err, repository.ErrNotFound):
		return notFound("Archive")
	default:
		s.log.Error().Err(err).Str("ref", ref).Msg(msg)
		return err
	}
}
