package handlers

import (
	"net/http"

	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

// GET /projects
func (h *Handlers) GetProjects(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	projects, err := h.service.ListProjects(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := make([]gen.Project, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProject(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /projects
func (h *Handlers) PostProjects(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req gen.PostProjectsJSONRequestBody
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := h.service.CreateProject(r.Context(), actor, usecase.CreateProjectInput{
		Name:    req.Name,
		RepoURL: req.RepoUrl,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProject(project))
}

// DELETE /projects/{projectId}
func (h *Handlers) DeleteProjectsProjectId(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProject(r.Context(), actor, projectId); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /projects/{projectId}/assign/{userId}
func (h *Handlers) PostProjectsProjectIdAssignUserId(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId, userId gen.UserId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.AssignUser(r.Context(), actor, projectId, userId); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /projects/{projectId}/users
func (h *Handlers) GetProjectsProjectIdUsers(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	users, err := h.service.ListProjectUsers(r.Context(), actor, projectId)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUsers(users))
}

// DELETE /projects/{projectId}/users/{userId}
func (h *Handlers) DeleteProjectsProjectIdUsersUserId(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId, userId gen.UserId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.UnassignUser(r.Context(), actor, projectId, userId); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
