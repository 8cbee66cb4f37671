package entity

import "time"

// RawPullRequest is an open pull request as the source control host reports it.
// CreatedAt keeps the timestamp text untouched; parsing happens during classification.
type RawPullRequest struct {
	ID           int64
	Number       int
	Title        string
	Author       string
	State        string
	SourceBranch string
	TargetBranch string
	CreatedAt    string
	URL          string
}

type ClassifiedPullRequest struct {
	ID           int64
	Number       int
	Title        string
	Author       string
	State        string
	SourceBranch string
	TargetBranch string
	CreatedAt    time.Time
	DaysOpen     int
	IsStale      bool
	URL          string
}

type SummaryMetrics struct {
	TotalOpenPRs    int
	StalePRs        int
	AverageDaysOpen int
	OldestPRDays    int
}

type TrendBuckets struct {
	Daily  map[string]int
	Weekly map[string]int
}
