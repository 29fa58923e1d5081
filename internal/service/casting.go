package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/metrics"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/rs/zerolog"
)

type castingService struct {
	repo repository.CastingRepository
	tx   repository.TxManager
	log  zerolog.Logger
}

func NewCastingService(repo repository.CastingRepository, tx repository.TxManager, logger zerolog.Logger) CastingService {
	l := logger.With().Str("module", "service").Str("component", "casting").Logger()
	return &castingService{repo: repo, tx: tx, log: l}
}

func (s *castingService) SubmitCasting(ctx context.Context, in CastingInput) (model.Casting, error) {
	start := time.Now()
	in.normalize()
	if err := check(&in); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("casting validation failed")
		return model.Casting{}, err
	}

	c := model.Casting{
		Company:     in.Company,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		ProjectType: in.ProjectType,
		Description: in.Description,
		Budget:      in.Budget,
		Status:      model.CastingPending,
	}
	if in.ShootDate != nil {
		// already checked by the datetime rule
		shoot, err := time.Parse(time.RFC3339, *in.ShootDate)
		if err != nil {
			return model.Casting{}, InvalidInput("shootDate", "must be an RFC 3339 date-time")
		}
		shoot = shoot.UTC()
		c.ShootDate = &shoot
	}

	out, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error().Err(err).Msg("submit casting failed")
		return model.Casting{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("casting_id", out.ID).Msg("casting submitted")
	return out, nil
}

func (s *castingService) ListCastings(ctx context.Context, q listing.Query) (listing.Page[model.Casting], error) {
	page, err := listing.Execute(ctx, s.repo, q)
	if err != nil {
		s.log.Error().Err(err).Str("status", q.Filter.Value).Int("page", q.Page.Page).Int("limit", q.Page.Limit).Msg("list castings failed")
		return listing.Page[model.Casting]{}, err
	}
	return page, nil
}

func (s *castingService) GetCasting(ctx context.Context, id string) (model.Casting, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Casting{}, orNotFound(err, "Casting")
	}
	return c, nil
}

// UpdateCastingStatus moves the casting request along its state machine. The row
// is locked while the transition is checked, so concurrent reviewers serialize.
func (s *castingService) UpdateCastingStatus(ctx context.Context, id string, in CastingStatusInput) (model.Casting, error) {
	if err := check(&in); err != nil {
		return model.Casting{}, err
	}
	next := model.CastingStatus(in.Status)

	var (
		out     model.Casting
		changed bool
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, "Casting")
		}
		if current.Status == next {
			out = current
			return nil
		}
		if !current.Status.CanTransitionTo(next) {
			return invalidTransition(current.Status, next)
		}
		out, err = s.repo.UpdateStatus(ctx, id, next)
		changed = err == nil
		return err
	})
	if err != nil {
		var svcErr *Error
		if !errors.As(err, &svcErr) {
			s.log.Error().Err(err).Str("casting_id", id).Msg("update casting status failed")
		}
		return model.Casting{}, orNotFound(err, "Casting")
	}
	if changed {
		metrics.StatusTransitions.WithLabelValues("casting", string(out.Status)).Inc()
	}
	s.log.Info().Str("casting_id", id).Str("status", string(out.Status)).Msg("casting status updated")
	return out, nil
}

func (s *castingService) DeleteCasting(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Casting")
		}
		s.log.Error().Err(err).Str("casting_id", id).Msg("delete casting failed")
		return err
	}
	s.log.Info().Str("casting_id", id).Msg("casting deleted")
	return nil
}
