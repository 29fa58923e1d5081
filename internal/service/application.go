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

type applicationService struct {
	repo repository.ApplicationRepository
	tx   repository.TxManager
	log  zerolog.Logger
}

func NewApplicationService(repo repository.ApplicationRepository, tx repository.TxManager, logger zerolog.Logger) ApplicationService {
	l := logger.With().Str("module", "service").Str("component", "application").Logger()
	return &applicationService{repo: repo, tx: tx, log: l}
}

func (s *applicationService) SubmitApplication(ctx context.Context, in ApplicationInput) (model.Application, error) {
	start := time.Now()
	in.normalize()
	if err := check(&in); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("application validation failed")
		return model.Application{}, err
	}

	out, err := s.repo.Create(ctx, model.Application{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Age:       in.Age,
		Height:    in.Height,
		Weight:    in.Weight,
		Instagram: in.Instagram,
		Portfolio: in.Portfolio,
		Message:   in.Message,
		Status:    model.ApplicationPending,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("submit application failed")
		return model.Application{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("application_id", out.ID).Msg("application submitted")
	return out, nil
}

func (s *applicationService) ListApplications(ctx context.Context, q listing.Query) (listing.Page[model.Application], error) {
	page, err := listing.Execute(ctx, s.repo, q)
	if err != nil {
		s.log.Error().Err(err).Str("status", q.Filter.Value).Int("page", q.Page.Page).Int("limit", q.Page.Limit).Msg("list applications failed")
		return listing.Page[model.Application]{}, err
	}
	return page, nil
}

func (s *applicationService) GetApplication(ctx context.Context, id string) (model.Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Application{}, orNotFound(err, "Application")
	}
	return a, nil
}

// UpdateApplicationStatus moves the application along its state machine. The row
// is locked while the transition is checked, so concurrent reviewers serialize.
func (s *applicationService) UpdateApplicationStatus(ctx context.Context, id string, in ApplicationStatusInput) (model.Application, error) {
	if err := check(&in); err != nil {
		return model.Application{}, err
	}
	next := model.ApplicationStatus(in.Status)

	var (
		out     model.Application
		changed bool
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, id)
		if err != nil {
			return orNotFound(err, "Application")
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
			s.log.Error().Err(err).Str("application_id", id).Msg("update application status failed")
		}
		return model.Application{}, orNotFound(err, "Application")
	}
	if changed {
		metrics.StatusTransitions.WithLabelValues("application", string(out.Status)).Inc()
	}
	s.log.Info().Str("application_id", id).Str("status", string(out.Status)).Msg("application status updated")
	return out, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Application")
		}
		s.log.Error().Err(err).Str("application_id", id).Msg("delete application failed")
		return err
	}
	s.log.Info().Str("application_id", id).Msg("application deleted")
	return nil
}
