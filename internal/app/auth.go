package app

import (
	"context"
	"errors"
	"strings"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

func (s *ServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return "", usecase.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.log.Debugw("login rejected", "user_id", user.ID, "error", err)
		return "", usecase.ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}

// Authenticate reloads the user so deleted accounts lose access before their token expires.
func (s *ServiceImpl) Authenticate(ctx context.Context, token string) (entity.Actor, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return entity.Actor{}, usecase.ErrUnauthenticated
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return entity.Actor{}, usecase.ErrUnauthenticated
		}
		return entity.Actor{}, err
	}

	return entity.Actor{UserID: user.ID, Role: user.Role}, nil
}
