package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
	"github.com/bloghub/blog-api/internal/core/token"
)

// AuthService implements registration, login and profile maintenance.
type AuthService struct {
	users   ports.UserRepository
	codec   *token.Codec
	limiter ports.LoginLimiter
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{users: users, codec: codec, limiter: limiter}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Bio:          input.Bio,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.codec.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}
	return tkn, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.limiter != nil && !s.limiter.Allow(ctx, email) {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password so the endpoint does not
			// reveal which accounts exist.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.limiter != nil {
			s.limiter.RecordFailure(ctx, email)
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, email)
	}

	tkn, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return tkn, user, nil
}

func (s *AuthService) UpdateDetails(ctx context.Context, input ports.UpdateDetailsInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	return s.codec.Issue(user.ID)
}
