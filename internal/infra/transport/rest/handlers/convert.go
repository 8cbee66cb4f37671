package handlers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

func toUser(u entity.User) gen.User {
	return gen.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     openapi_types.Email(u.Email),
		Role:      gen.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUsers(users []entity.User) []gen.User {
	resp := make([]gen.User, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUser(u))
	}
	return resp
}

func toProject(p entity.Project) gen.Project {
	return gen.Project{
		Id:        p.ID,
		Name:      p.Name,
		RepoUrl:   p.RepoURL,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func toPullRequest(pr entity.ClassifiedPullRequest) gen.PullRequest {
	return gen.PullRequest{
		Id:           pr.ID,
		Number:       pr.Number,
		Title:        pr.Title,
		Author:       pr.Author,
		State:        pr.State,
		SourceBranch: pr.SourceBranch,
		TargetBranch: pr.TargetBranch,
		CreatedAt:    pr.CreatedAt,
		DaysOpen:     pr.DaysOpen,
		IsStale:      pr.IsStale,
		Url:          pr.URL,
	}
}
