package prhealth

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

const day = 24 * time.Hour

// ParseCreatedAt parses an ISO-8601 timestamp. A trailing "Z" designator is
// rewritten to an explicit +00:00 offset first.
func ParseCreatedAt(value string) (time.Time, error) {
	normalized := strings.TrimSpace(value)
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	t, err := time.Parse(time.RFC3339Nano, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	return t.UTC(), nil
}

// DaysOpen returns the whole days elapsed between createdAt and now, truncated.
// A creation time in the future counts as zero days.
func DaysOpen(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / day)
}

func Classify(raw entity.RawPullRequest, now time.Time, cfg Config) (entity.ClassifiedPullRequest, error) {
	createdAt, err := ParseCreatedAt(raw.CreatedAt)
	if err != nil {
		return entity.ClassifiedPullRequest{}, fmt.Errorf("pull request #%d: %w", raw.Number, err)
	}

	daysOpen := DaysOpen(createdAt, now)

	return entity.ClassifiedPullRequest{
		ID:           raw.ID,
		Number:       raw.Number,
		Title:        raw.Title,
		Author:       raw.Author,
		State:        raw.State,
		SourceBranch: raw.SourceBranch,
		TargetBranch: raw.TargetBranch,
		CreatedAt:    createdAt,
		DaysOpen:     daysOpen,
		IsStale:      cfg.isStale(daysOpen),
		URL:          raw.URL,
	}, nil
}

// ClassifyAll classifies a batch against a single reference instant. One
// malformed record fails the whole batch.
func ClassifyAll(raws []entity.RawPullRequest, now time.Time, cfg Config) ([]entity.ClassifiedPullRequest, error) {
	result := make([]entity.ClassifiedPullRequest, 0, len(raws))
	for _, raw := range raws {
		pr, err := Classify(raw, now, cfg)
		if err != nil {
			return nil, err
		}
		result = append(result, pr)
	}
	return result, nil
}
