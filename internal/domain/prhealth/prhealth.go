// Package prhealth derives pull request health figures from the open pull
// requests of a repository: per-PR age and staleness, summary statistics and
// daily/weekly creation trends.
//
// Every function here is pure. Callers capture "now" once per request and
// pass the same instant to every classification so that all figures in one
// response agree with each other.
package prhealth

import "errors"

const DefaultStaleThresholdDays = 7

var (
	ErrMalformedRepositoryURL = errors.New("invalid GitHub repository URL")
	ErrInvalidTimestamp       = errors.New("invalid pull request timestamp")
	ErrSourceUnavailable      = errors.New("pull request source unavailable")
)

// Config carries the tunables of the pipeline.
type Config struct {
	// A PR is stale when it has been open strictly longer than this many days.
	StaleThresholdDays int
}

func DefaultConfig() Config {
	return Config{StaleThresholdDays: DefaultStaleThresholdDays}
}

func (c Config) isStale(daysOpen int) bool {
	return daysOpen > c.StaleThresholdDays
}
