package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
)

type userRepoMock struct{ mock.Mock }

var _ repository.UserRepository = (*userRepoMock)(nil)

func (m *userRepoMock) Create(ctx context.Context, user entity.User) (entity.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *userRepoMock) Get(ctx context.Context, id int64) (entity.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *userRepoMock) ListByRoles(ctx context.Context, roles ...entity.Role) ([]entity.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *userRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type projectRepoMock struct{ mock.Mock }

var _ repository.ProjectRepository = (*projectRepoMock)(nil)

func (m *projectRepoMock) Create(ctx context.Context, project entity.Project) (entity.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(entity.Project), args.Error(1)
}

func (m *projectRepoMock) Get(ctx context.Context, id int64) (entity.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Project), args.Error(1)
}

func (m *projectRepoMock) List(ctx context.Context) ([]entity.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Project), args.Error(1)
}

func (m *projectRepoMock) ListByUser(ctx context.Context, userID int64) ([]entity.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Project), args.Error(1)
}

func (m *projectRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type assignmentRepoMock struct{ mock.Mock }

var _ repository.AssignmentRepository = (*assignmentRepoMock)(nil)

func (m *assignmentRepoMock) Assign(ctx context.Context, projectID, userID int64) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *assignmentRepoMock) Unassign(ctx context.Context, projectID, userID int64) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *assignmentRepoMock) IsAssigned(ctx context.Context, projectID, userID int64) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *assignmentRepoMock) ListUsers(ctx context.Context, projectID int64) ([]entity.User, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *assignmentRepoMock) DeleteByProject(ctx context.Context, projectID int64) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *assignmentRepoMock) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type sourceMock struct{ mock.Mock }

var _ repository.PullRequestSource = (*sourceMock)(nil)

func (m *sourceMock) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]entity.RawPullRequest, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RawPullRequest), args.Error(1)
}

type hasherMock struct{ mock.Mock }

func (m *hasherMock) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *hasherMock) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type tokensMock struct{ mock.Mock }

func (m *tokensMock) Issue(user entity.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *tokensMock) Parse(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

// inlineTx runs fn on the caller's context without a database.
type inlineTx struct{ calls int }

func (t *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
