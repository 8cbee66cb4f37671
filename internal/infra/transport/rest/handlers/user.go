package handlers

import (
	"net/http"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

// POST /users/login
func (h *Handlers) PostUsersLogin(w http.ResponseWriter, r *http.Request) {
	var req gen.PostUsersLoginJSONRequestBody
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.service.Login(r.Context(), string(req.Email), req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// POST /users
func (h *Handlers) PostUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req gen.PostUsersJSONRequestBody
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), actor, usecase.CreateUserInput{
		Name:     req.Name,
		Email:    string(req.Email),
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUser(user))
}

// GET /users/tech-leads
func (h *Handlers) GetUsersTechLeads(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	users, err := h.service.ListTechLeads(r.Context(), actor)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUsers(users))
}

// DELETE /users/{userId}
func (h *Handlers) DeleteUsersUserId(w http.ResponseWriter, r *http.Request, userId gen.UserId) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), actor, userId); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
