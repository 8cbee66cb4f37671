package prhealth

import (
	"fmt"
	"time"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

func DailyKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeeklyKey formats the ISO-8601 week of t as "2024-W2". The week number is
// not zero padded.
func WeeklyKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// Bucket counts PR creations per calendar day and per ISO week. Periods with
// no PRs are absent from the result.
func Bucket(prs []entity.ClassifiedPullRequest) entity.TrendBuckets {
	buckets := entity.TrendBuckets{
		Daily:  make(map[string]int),
		Weekly: make(map[string]int),
	}
	for _, pr := range prs {
		buckets.Daily[DailyKey(pr.CreatedAt)]++
		buckets.Weekly[WeeklyKey(pr.CreatedAt)]++
	}
	return buckets
}
