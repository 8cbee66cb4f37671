package entity

import "time"

type Project struct {
	ID        int64
	Name      string
	RepoURL   string
	CreatedBy *int64
	CreatedAt time.Time
}

type Assignment struct {
	UserID     int64
	ProjectID  int64
	AssignedAt time.Time
}
