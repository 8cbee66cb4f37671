package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

func (s *ServiceImpl) CreateProject(ctx context.Context, actor entity.Actor, in usecase.CreateProjectInput) (entity.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return entity.Project{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.RepoURL = strings.TrimSpace(in.RepoURL)
	if err := s.validateInput(in); err != nil {
		return entity.Project{}, err
	}
	// reject now what the pull request endpoints could never resolve
	if _, _, err := prhealth.ParseRepositoryURL(in.RepoURL); err != nil {
		return entity.Project{}, err
	}

	createdBy := actor.UserID
	project, err := s.projects.Create(ctx, entity.Project{
		Name:      in.Name,
		RepoURL:   in.RepoURL,
		CreatedBy: &createdBy,
	})
	if err != nil {
		return entity.Project{}, err
	}

	s.log.Infow("project created", "project_id", project.ID, "repo_url", project.RepoURL)
	return project, nil
}

func (s *ServiceImpl) ListProjects(ctx context.Context, actor entity.Actor) ([]entity.Project, error) {
	if actor.IsAdmin() {
		return s.projects.List(ctx)
	}
	return s.projects.ListByUser(ctx, actor.UserID)
}

func (s *ServiceImpl) DeleteProject(ctx context.Context, actor entity.Actor, projectID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.assignments.DeleteByProject(txCtx, projectID); err != nil {
			return err
		}
		return s.projects.Delete(txCtx, projectID)
	})
}

func (s *ServiceImpl) AssignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.Get(txCtx, projectID); err != nil {
			return err
		}
		if _, err := s.users.Get(txCtx, userID); err != nil {
			return err
		}
		if err := s.assignments.Assign(txCtx, projectID, userID); err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		return nil
	})
}

func (s *ServiceImpl) UnassignUser(ctx context.Context, actor entity.Actor, projectID, userID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return s.assignments.Unassign(ctx, projectID, userID)
}

func (s *ServiceImpl) ListProjectUsers(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.assignments.ListUsers(ctx, projectID)
}
