package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maxviazov/talent-agency-service/internal/auth"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/rs/zerolog"
)

// invalidCredentials is the one message for every login failure, so callers
// cannot probe which emails exist.
const invalidCredentials = "Invalid email or password"

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Admin     model.Admin `json:"admin"`
}

type adminService struct {
	admins  repository.AdminRepository
	tokens  *auth.TokenIssuer
	revoker auth.Revoker
	log     zerolog.Logger
}

func NewAdminService(admins repository.AdminRepository, tokens *auth.TokenIssuer, revoker auth.Revoker, logger zerolog.Logger) AdminService {
	l := logger.With().Str("module", "service").Str("component", "admin").Logger()
	return &adminService{admins: admins, tokens: tokens, revoker: revoker, log: l}
}

func (s *adminService) Login(ctx context.Context, in LoginInput) (Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := check(&in); err != nil {
		return Session{}, err
	}

	admin, err := s.admins.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			auth.BurnCompare(in.Password)
			s.log.Info().Msg("login rejected: unknown email")
			return Session{}, unauthorized(invalidCredentials)
		}
		s.log.Error().Err(err).Msg("login lookup failed")
		return Session{}, err
	}
	if !auth.CheckPassword(admin.PasswordHash, in.Password) {
		s.log.Info().Str("admin_id", admin.ID).Msg("login rejected: wrong password")
		return Session{}, unauthorized(invalidCredentials)
	}

	token, claims, err := s.tokens.Issue(admin)
	if err != nil {
		s.log.Error().Err(err).Str("admin_id", admin.ID).Msg("issue token failed")
		return Session{}, err
	}
	s.log.Info().Str("admin_id", admin.ID).Msg("admin logged in")
	return Session{Token: token, ExpiresAt: claims.ExpiresAt.Time, Admin: admin}, nil
}

// Authenticate resolves a bearer token into its claims, rejecting revoked tokens.
func (s *adminService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, unauthorized("Unauthorized")
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, unauthorized("Unauthorized")
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("revocation lookup failed")
		return nil, err
	}
	if revoked {
		return nil, unauthorized("Unauthorized")
	}
	return claims, nil
}

// Logout revokes the token until it would have expired. Logging out twice is fine.
func (s *adminService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return unauthorized("Unauthorized")
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		s.log.Error().Err(err).Str("admin_id", claims.Subject).Msg("revoke token failed")
		return err
	}
	s.log.Info().Str("admin_id", claims.Subject).Msg("admin logged out")
	return nil
}

func (s *adminService) Me(ctx context.Context, adminID string) (model.Admin, error) {
	a, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		// a token for a deleted account is no longer a valid session
		if errors.Is(err, repository.ErrNotFound) {
			return model.Admin{}, unauthorized("Unauthorized")
		}
		return model.Admin{}, err
	}
	return a, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, in AdminInput) (model.Admin, error) {
	in.normalize()
	if err := check(&in); err != nil {
		return model.Admin{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return model.Admin{}, err
	}
	out, err := s.admins.Create(ctx, model.Admin{Email: in.Email, PasswordHash: hash, Name: in.Name})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.Admin{}, alreadyExists("Email already exists")
		}
		s.log.Error().Err(err).Msg("create admin failed")
		return model.Admin{}, err
	}
	s.log.Info().Str("admin_id", out.ID).Msg("admin created")
	return out, nil
}
