package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
	"github.com/KEYAJANI/demiland-sub000/internal/ids"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrCurrentPassword    = errors.New("current password is incorrect")
	ErrMissingFields      = errors.New("email, password, first name and last name are required")
	ErrEmptyUpdate        = errors.New("no fields provided to update")
)

type AuthService struct {
	users    UserStore
	sessions SessionStore
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(users UserStore, sessions SessionStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	IPAddress string
	UserAgent string
}

type AuthResult struct {
	User  models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return AuthResult{}, ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		s.log.Warn().Str("email", input.Email).Msg("registration rejected: email taken")
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.UserRoleUser,
		// Email verification is not a gate: accounts are usable immediately.
		EmailVerified: true,
		IsActive:      true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, err
	}

	token, err := s.issueSession(ctx, user, input.IPAddress, input.UserAgent)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return AuthResult{User: user, Token: token}, nil
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn().Str("email", input.Email).Msg("login failed")
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if !user.IsActive {
		s.log.Warn().Str("user_id", user.ID).Msg("login failed: inactive account")
		return AuthResult{}, ErrInvalidCredentials
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		s.log.Warn().Str("user_id", user.ID).Msg("login failed")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user, input.IPAddress, input.UserAgent)
	if err != nil {
		return AuthResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return AuthResult{User: user, Token: token}, nil
}

// issueSession signs a bearer token and records the session row backing it.
// The session stores only a digest of the token.
func (s *AuthService) issueSession(ctx context.Context, user models.User, ip string, userAgent string) (string, error) {
	sessionID := ids.New()

	token, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		user.Email,
		string(user.Role),
		sessionID,
		s.cfg.Security.JWTTTL,
	)
	if err != nil {
		return "", err
	}

	session := models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: security.HashToken(token),
		IPAddress: ip,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(s.cfg.Security.JWTTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return token, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	userUpdate := models.UserUpdate{
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Phone:     update.Phone,
	}
	if userUpdate.Empty() {
		return models.User{}, ErrEmptyUpdate
	}

	if err := s.users.Update(ctx, userID, userUpdate); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil || !ok {
		s.log.Warn().Str("user_id", userID).Msg("password change rejected")
		return ErrCurrentPassword
	}

	newHash, err := security.HashPassword(newPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.Update(ctx, userID, models.UserUpdate{PasswordHash: newHash}); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}
