package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/ids"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
)

var (
	ErrSelfDelete  = errors.New("admins cannot delete their own account")
	ErrInvalidRole = errors.New("invalid role")
)

// UserAdminService covers the admin-only user lifecycle on top of the same
// users table the auth flow uses.
type UserAdminService struct {
	users    UserStore
	sessions SessionStore
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewUserAdminService(users UserStore, sessions SessionStore, cfg *config.AppConfig, log zerolog.Logger) *UserAdminService {
	return &UserAdminService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

func (s *UserAdminService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
	Role      models.UserRole
	IsActive  *bool
}

func (s *UserAdminService) Create(ctx context.Context, input CreateUserInput) (models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return models.User{}, ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	passwordHash, err := security.HashPassword(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:            ids.New(),
		Email:         input.Email,
		PasswordHash:  passwordHash,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		Role:          role,
		EmailVerified: true,
		IsActive:      active,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user created by admin")
	return user, nil
}

type AdminUserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *models.UserRole
	IsActive  *bool
	// Password, when set, is re-hashed; plaintext never reaches the store.
	Password *string
}

func (s *UserAdminService) Update(ctx context.Context, id string, update AdminUserUpdate) (models.User, error) {
	userUpdate := models.UserUpdate{
		Email:     update.Email,
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Phone:     update.Phone,
		IsActive:  update.IsActive,
	}

	if update.Role != nil {
		if !update.Role.Valid() {
			return models.User{}, ErrInvalidRole
		}
		userUpdate.Role = update.Role
	}

	if update.Password != nil && *update.Password != "" {
		hash, err := security.HashPassword(*update.Password, s.cfg.Security.BcryptCost)
		if err != nil {
			return models.User{}, err
		}
		userUpdate.PasswordHash = hash
	}

	if userUpdate.Empty() {
		return models.User{}, ErrEmptyUpdate
	}

	if err := s.users.Update(ctx, id, userUpdate); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	// Deactivation revokes live sessions so the account is locked out
	// immediately, not at the next token expiry.
	if update.IsActive != nil && !*update.IsActive {
		if err := s.sessions.DeleteByUser(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("session revocation failed")
		}
	}

	s.log.Info().Str("user_id", id).Msg("user updated by admin")
	return s.users.GetByID(ctx, id)
}

// Delete hard-deletes the target account and everything hanging off it.
// The actor may delete any account except their own.
func (s *UserAdminService) Delete(ctx context.Context, actorID string, targetID string) error {
	if actorID == targetID {
		return ErrSelfDelete
	}

	if err := s.users.DeleteCascade(ctx, targetID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", targetID).Str("deleted_by", actorID).Msg("user deleted")
	return nil
}

func (s *UserAdminService) ChangeRole(ctx context.Context, id string, role models.UserRole) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	if err := s.users.Update(ctx, id, models.UserUpdate{Role: &role}); err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("role changed")
	return s.users.GetByID(ctx, id)
}
