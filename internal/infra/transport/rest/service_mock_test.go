package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

type serviceMock struct{ mock.Mock }

var _ usecase.Service = (*serviceMock)(nil)

func (m *serviceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *serviceMock) Authenticate(ctx context.Context, token string) (entity.Actor, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(entity.Actor), args.Error(1)
}

func (m *serviceMock) CreateUser(ctx context.Context, actor entity.Actor, in usecase.CreateUserInput) (entity.User, error) {
	args := m.Called(ctx, actor, in)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *serviceMock) ListTechLeads(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *serviceMock) DeleteUser(ctx context.Context, actor entity.Actor, userID int64) error {
	return m.Called(ctx, actor, userID).Error(0)
}

func (m *serviceMock) EnsureAdmin(ctx context.Context, name, email, password string) (entity.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *serviceMock) CreateProject(ctx context.Context, actor entity.Actor, in usecase.CreateProjectInput) (entity.Project, error) {
	args := m.Called(ctx, actor, in)
	return args.Get(0).(entity.Project), args.Error(1)
}

func (m *serviceMock) ListProjects(ctx context.Context, actor entity.Actor) ([]entity.Project, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Project), args.Error(1)
}

func (m *serviceMock) DeleteProject(ctx context.Context, actor entity.Actor, projectID int64) error {
	return m.Called(ctx, actor, projectID).Error(0)
}

func (m *serviceMock) AssignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error {
	return m.Called(ctx, actor, projectID, userID).Error(0)
}

func (m *serviceMock) UnassignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error {
	return m.Called(ctx, actor, projectID, userID).Error(0)
}

func (m *serviceMock) ListProjectUsers(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.User, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *serviceMock) GetPullRequestDetails(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.ClassifiedPullRequest, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ClassifiedPullRequest), args.Error(1)
}

func (m *serviceMock) GetPullRequestSummary(ctx context.Context, actor entity.Actor, projectID int64) (entity.SummaryMetrics, error) {
	args := m.Called(ctx, actor, projectID)
	return args.Get(0).(entity.SummaryMetrics), args.Error(1)
}

func (m *serviceMock) GetPullRequestTrends(ctx context.Context, actor entity.Actor, projectID int64) (entity.TrendBuckets, error) {
	args := m.Called(ctx, actor, projectID)
	return args.Get(0).(entity.TrendBuckets), args.Error(1)
}
