package usecase

import (
	"context"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

type CreateUserInput struct {
	Name     string      `validate:"required,max=255"`
	Email    string      `validate:"required,email,max=255"`
	Password string      `validate:"required,min=8,max=72"`
	Role     entity.Role `validate:"required,oneof=ADMIN TECH_LEAD"`
}

type CreateProjectInput struct {
	Name    string `validate:"required,max=255"`
	RepoURL string `validate:"required,url,max=2048"`
}

type AuthUseCase interface {
	// Issue an access token for valid credentials
	Login(ctx context.Context, email, password string) (string, error)

	// Resolve a bearer token to the calling user
	Authenticate(ctx context.Context, token string) (entity.Actor, error)
}

type UserUseCase interface {
	CreateUser(ctx context.Context, actor entity.Actor, in CreateUserInput) (entity.User, error)
	ListTechLeads(ctx context.Context, actor entity.Actor) ([]entity.User, error)

	// Removes the user together with the user's project assignments
	DeleteUser(ctx context.Context, actor entity.Actor, userID int64) error

	// Create the bootstrap admin unless a user with that email already exists
	EnsureAdmin(ctx context.Context, name, email, password string) (entity.User, error)
}

type ProjectUseCase interface {
	CreateProject(ctx context.Context, actor entity.Actor, in CreateProjectInput) (entity.Project, error)

	// Admins see every project, tech leads only their assignments
	ListProjects(ctx context.Context, actor entity.Actor) ([]entity.Project, error)

	DeleteProject(ctx context.Context, actor entity.Actor, projectID int64) error
	AssignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error
	UnassignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error
	ListProjectUsers(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.User, error)
}

// PR health of a project's repository, computed on every call
type PullRequestUseCase interface {
	GetPullRequestDetails(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.ClassifiedPullRequest, error)
	GetPullRequestSummary(ctx context.Context, actor entity.Actor, projectID int64) (entity.SummaryMetrics, error)
	GetPullRequestTrends(ctx context.Context, actor entity.Actor, projectID int64) (entity.TrendBuckets, error)
}

// Facade over all use cases
type Service interface {
	AuthUseCase
	UserUseCase
	ProjectUseCase
	PullRequestUseCase
}
