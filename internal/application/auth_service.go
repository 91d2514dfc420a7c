package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stakeflow/stakeflow/internal/domain/entity"
	repo "github.com/stakeflow/stakeflow/internal/domain/repository"
	"github.com/stakeflow/stakeflow/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
)

// AuthService registers and authenticates users and issues bearer tokens.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterResult struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Register stores a bcrypt hash of the password, assigns the default role
// and issues a short-validity token.
func (s *AuthService) Register(ctx context.Context, email, password string) (*RegisterResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Role: entity.RoleUser}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	token, exp, err := s.JWT.GenerateRegisterToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate register token failed")
		}
		return nil, err
	}
	return &RegisterResult{UserID: u.ID, Token: token, ExpiresAt: exp}, nil
}

type LoginResult struct {
	UserID    int64
	Email     string
	Role      entity.Role
	Token     string
	ExpiresAt time.Time
}

// Login validates email/password and issues a session token carrying the
// stored role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateSessionToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, err
	}
	return &LoginResult{UserID: u.ID, Email: u.Email, Role: u.Role, Token: token, ExpiresAt: exp}, nil
}

type UpdateProfileInput struct {
	CurrentPassword string
	Email           string
	NewPassword     string
}

// UpdateProfile re-checks the current password, then replaces the email
// and/or password. A blank new password keeps the existing hash; an absent
// email keeps the existing address.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !helpers.CompareHashAndPassword(u.Password, in.CurrentPassword) {
		return ErrInvalidCredentials
	}
	if strings.TrimSpace(in.NewPassword) != "" {
		hash, err := helpers.HashPassword(in.NewPassword)
		if err != nil {
			return err
		}
		u.Password = hash
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrEmailTaken
		}
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
