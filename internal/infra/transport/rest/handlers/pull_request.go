package handlers

import (
	"net/http"

	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

// GET /projects/{projectId}/pull-requests
func (h *Handlers) GetProjectsProjectIdPullRequests(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	prs, err := h.service.GetPullRequestDetails(r.Context(), actor, projectId)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := make([]gen.PullRequest, 0, len(prs))
	for _, pr := range prs {
		resp = append(resp, toPullRequest(pr))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /projects/{projectId}/pull-requests/summary
func (h *Handlers) GetProjectsProjectIdPullRequestsSummary(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetPullRequestSummary(r.Context(), actor, projectId)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.PullRequestSummary{
		TotalOpenPrs:    summary.TotalOpenPRs,
		StalePrs:        summary.StalePRs,
		AverageDaysOpen: summary.AverageDaysOpen,
		OldestPrDays:    summary.OldestPRDays,
	})
}

// GET /projects/{projectId}/pull-requests/trends
func (h *Handlers) GetProjectsProjectIdPullRequestsTrends(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	trends, err := h.service.GetPullRequestTrends(r.Context(), actor, projectId)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.PullRequestTrends{
		Daily:  trends.Daily,
		Weekly: trends.Weekly,
	})
}
