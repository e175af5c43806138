package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carparts/carparts-api/internal/metrics"
	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// UserService implements user listing, role checks, login and promotion.
type UserService struct {
	users     ports.UserRepository
	roles     ports.RoleCache
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewUserService builds a UserService. roles may be nil, in which case every
// role check reads the store.
func NewUserService(users ports.UserRepository, roles ports.RoleCache, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &UserService{
		users:     users,
		roles:     roles,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.Document, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// IsAdmin resolves the stored role for email, through the role cache when one
// is configured. Unknown users are reported as non-admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, found, err := s.lookupRole(ctx, email)
	if err != nil {
		return false, err
	}
	return found && domain.IsAdminRole(role), nil
}

func (s *UserService) lookupRole(ctx context.Context, email string) (string, bool, error) {
	if s.roles != nil {
		role, found, err := s.roles.Get(ctx, email)
		switch {
		case err != nil:
			metrics.RoleCacheLookupsTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("email", email).Msg("role cache read failed, reading store")
		case found:
			metrics.RoleCacheLookupsTotal.WithLabelValues("hit").Inc()
			return role, true, nil
		default:
			metrics.RoleCacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("lookup role: %w", err)
	}

	// Only admin roles are cached. Roles are only ever raised to admin, so a
	// cached admin cannot go stale, while a non-admin read racing a Promote
	// could.
	role := user.String(domain.FieldRole)
	if s.roles != nil && domain.IsAdminRole(role) {
		if err := s.roles.Set(ctx, email, role); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to cache role")
		}
	}
	return role, true, nil
}

// Login upserts the user fields keyed by email and issues a fresh token for
// that email. The role and identifier cannot be set through this path.
func (s *UserService) Login(ctx context.Context, email string, fields domain.Document) (*ports.LoginResult, error) {
	set := fields.Without(domain.FieldID, domain.FieldRole)
	set[domain.FieldEmail] = email

	res, err := s.users.UpsertByEmail(ctx, email, set)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.invalidateRole(ctx, email)

	token, err := s.generateToken(email)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}
	metrics.LoginsTotal.Inc()
	s.log.Info().Str("email", email).Bool("created", res.UpsertedCount > 0).Msg("user logged in")

	return &ports.LoginResult{Result: res, Token: token}, nil
}

// Promote grants the admin role to the user matching email.
func (s *UserService) Promote(ctx context.Context, email string) (*domain.UpdateResult, error) {
	res, err := s.users.SetRole(ctx, email, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	s.invalidateRole(ctx, email)
	s.log.Info().Str("email", email).Int64("matched", res.MatchedCount).Msg("user promoted to admin")
	return res, nil
}

func (s *UserService) invalidateRole(ctx context.Context, email string) {
	if s.roles == nil {
		return
	}
	if err := s.roles.Invalidate(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to invalidate cached role")
	}
}

func (s *UserService) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   s.now().Unix(),
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
