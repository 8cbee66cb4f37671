package repository

import (
	"context"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project entity.Project) (entity.Project, error)
	Get(ctx context.Context, id int64) (entity.Project, error)
	List(ctx context.Context) ([]entity.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Project, error)
	Delete(ctx context.Context, id int64) error
}

type AssignmentRepository interface {
	Assign(ctx context.Context, projectID, userID int64) error
	Unassign(ctx context.Context, projectID, userID int64) error
	IsAssigned(ctx context.Context, projectID, userID int64) (bool, error)
	ListUsers(ctx context.Context, projectID int64) ([]entity.User, error)
	DeleteByProject(ctx context.Context, projectID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
