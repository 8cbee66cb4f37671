package repository

import (
	"context"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

// PullRequestSource lists the pull requests that are open right now.
// Failures wrap prhealth.ErrSourceUnavailable.
type PullRequestSource interface {
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]entity.RawPullRequest, error)
}
