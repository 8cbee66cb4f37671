package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

func (s *ServiceImpl) CreateUser(ctx context.Context, actor entity.Actor, in usecase.CreateUserInput) (entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return entity.User{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validateInput(in); err != nil {
		return entity.User{}, err
	}

	return s.createUser(ctx, in)
}

func (s *ServiceImpl) createUser(ctx context.Context, in usecase.CreateUserInput) (entity.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.users.Create(ctx, entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return entity.User{}, err
	}

	s.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *ServiceImpl) ListTechLeads(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.users.ListByRoles(ctx, entity.RoleTechLead)
}

func (s *ServiceImpl) DeleteUser(ctx context.Context, actor entity.Actor, userID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == userID {
		return fmt.Errorf("%w: cannot delete yourself", usecase.ErrInvalidArgument)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.assignments.DeleteByUser(txCtx, userID); err != nil {
			return err
		}
		return s.users.Delete(txCtx, userID)
	})
	if err != nil {
		return err
	}

	s.log.Infow("user deleted", "user_id", userID, "by", actor.UserID)
	return nil
}

func (s *ServiceImpl) EnsureAdmin(ctx context.Context, name, email, password string) (entity.User, error) {
	existing, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, usecase.ErrUserNotFound) {
		return entity.User{}, err
	}

	in := usecase.CreateUserInput{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     entity.RoleAdmin,
	}
	if err := s.validateInput(in); err != nil {
		return entity.User{}, fmt.Errorf("bootstrap admin: %w", err)
	}

	user, err := s.createUser(ctx, in)
	if errors.Is(err, usecase.ErrEmailTaken) {
		// another instance won the race
		return s.users.GetByEmail(ctx, in.Email)
	}
	return user, err
}
