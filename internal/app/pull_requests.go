package app

import (
	"context"
	"fmt"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

func (s *ServiceImpl) GetPullRequestDetails(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.ClassifiedPullRequest, error) {
	return s.classifiedPullRequests(ctx, actor, projectID)
}

func (s *ServiceImpl) GetPullRequestSummary(ctx context.Context, actor entity.Actor, projectID int64) (entity.SummaryMetrics, error) {
	prs, err := s.classifiedPullRequests(ctx, actor, projectID)
	if err != nil {
		return entity.SummaryMetrics{}, err
	}
	return prhealth.Summarize(prs, s.metrics), nil
}

func (s *ServiceImpl) GetPullRequestTrends(ctx context.Context, actor entity.Actor, projectID int64) (entity.TrendBuckets, error) {
	prs, err := s.classifiedPullRequests(ctx, actor, projectID)
	if err != nil {
		return entity.TrendBuckets{}, err
	}
	return prhealth.Bucket(prs), nil
}

// classifiedPullRequests fetches the open pull requests of the project's
// repository and classifies them against one reference instant.
func (s *ServiceImpl) classifiedPullRequests(ctx context.Context, actor entity.Actor, projectID int64) ([]entity.ClassifiedPullRequest, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		assigned, err := s.assignments.IsAssigned(ctx, projectID, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, usecase.ErrForbidden
		}
	}

	owner, repo, err := prhealth.ParseRepositoryURL(project.RepoURL)
	if err != nil {
		return nil, err
	}

	raws, err := s.source.ListOpenPullRequests(ctx, owner, repo)
	if err != nil {
		s.log.Warnw("listing pull requests failed", "project_id", projectID, "owner", owner, "repo", repo, "error", err)
		return nil, err
	}

	prs, err := prhealth.ClassifyAll(raws, s.now(), s.metrics)
	if err != nil {
		return nil, fmt.Errorf("classify %s/%s: %w", owner, repo, err)
	}
	return prs, nil
}
