package prhealth

import (
	"math"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
)

// Summarize aggregates classified PRs. Staleness is recomputed from DaysOpen
// with cfg so the count never depends on how the input was produced.
// The average rounds half away from zero (a mean of 2.5 yields 3).
func Summarize(prs []entity.ClassifiedPullRequest, cfg Config) entity.SummaryMetrics {
	if len(prs) == 0 {
		return entity.SummaryMetrics{}
	}

	var (
		total  int
		stale  int
		oldest int
	)
	for _, pr := range prs {
		total += pr.DaysOpen
		if cfg.isStale(pr.DaysOpen) {
			stale++
		}
		if pr.DaysOpen > oldest {
			oldest = pr.DaysOpen
		}
	}

	return entity.SummaryMetrics{
		TotalOpenPRs:    len(prs),
		StalePRs:        stale,
		AverageDaysOpen: int(math.Round(float64(total) / float64(len(prs)))),
		OldestPRDays:    oldest,
	}
}
