package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-account-service/internal/auth"
	"github.com/spec-kit/user-account-service/internal/config"
	"github.com/spec-kit/user-account-service/internal/domain"
	"github.com/spec-kit/user-account-service/internal/events"
	"github.com/spec-kit/user-account-service/internal/repository"
	apperrors "github.com/spec-kit/user-account-service/pkg/util"
)

// RegisterInput carries the raw fields of a registration request.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Age       string
}

// UserService coordinates registration, login, and account management.
type UserService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	dispatcher  events.Dispatcher
	bcryptCost  int
	registerTTL time.Duration
	loginTTL    time.Duration
}

// NewUserService builds the service.
func NewUserService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{
		users:       users,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret),
		dispatcher:  dispatcher,
		bcryptCost:  cfg.BcryptCost,
		registerTTL: cfg.RegisterTokenTTL(),
		loginTTL:    cfg.LoginTokenTTL(),
	}
}

// Register creates a new account. Fields are normalized before the
// duplicate checks; the duplicate lookups only improve the error message,
// the unique indexes decide races. When issueToken is set (self-service
// registration) the returned token is bound to the new account; the admin
// create path passes false.
func (s *UserService) Register(ctx context.Context, in RegisterInput, issueToken bool) (*domain.User, string, time.Time, error) {
	email := domain.NormalizeEmail(in.Email)
	username := domain.NormalizeUsername(in.Username)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email", "Email already taken")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("username", "Username already taken")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(strings.TrimSpace(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) {
			return nil, "", time.Time{}, apperrors.NewValidationError([]apperrors.FieldError{
				{Field: "password", Message: "cannot be blank"},
			})
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Age:          strings.TrimSpace(in.Age),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user,
		events.UserRegisteredPayload{Username: user.Username, Email: user.Email})

	if !issueToken {
		return user, "", time.Time{}, nil
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email, s.registerTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Login authenticates by normalized username and password. The structured
// error names the failing field and nothing more.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorizedField("username", "User does not exist")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, strings.TrimSpace(password)); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorizedField("password", "Invalid password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email, s.loginTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetByID returns a single account or a not-found error.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Update applies a patch to an existing account. Nil fields stay untouched.
// A password in the patch is hashed before persisting; a value that is
// already a bcrypt digest is stored as-is rather than hashed a second time,
// since a double-hashed digest can never verify again.
func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = domain.NormalizeUsername(*patch.Username)
	}
	if patch.Email != nil {
		user.Email = domain.NormalizeEmail(*patch.Email)
	}
	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Age != nil {
		user.Age = strings.TrimSpace(*patch.Age)
	}
	if patch.Password != nil && strings.TrimSpace(*patch.Password) != "" {
		candidate := strings.TrimSpace(*patch.Password)
		if auth.IsHash(candidate) {
			user.PasswordHash = candidate
		} else {
			hash, err := auth.HashPassword(candidate, s.bcryptCost)
			if err != nil {
				return nil, apperrors.MapError(err)
			}
			user.PasswordHash = hash
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes an account and returns its final projection.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventUserDeleted, user,
		events.UserDeletedPayload{Username: user.Username, Email: user.Email})

	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, user *domain.User, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
