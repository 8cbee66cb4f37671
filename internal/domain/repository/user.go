package repository

import (
	"context"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user entity.User) (entity.User, error)
	Get(ctx context.Context, id int64) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	ListByRoles(ctx context.Context, roles ...entity.Role) ([]entity.User, error)
	Delete(ctx context.Context, id int64) error
}
