package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

const upstreamMessage = "pull request source is unavailable"

func ErrorBody(code gen.ErrorResponseErrorCode, message string) gen.ErrorResponse {
	var resp gen.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func WriteError(w http.ResponseWriter, code int, err gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(err)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, ErrorBody(gen.BADREQUEST, "invalid json body"))
		return false
	}
	return true
}

// StatusFor maps a service error to its HTTP status and error code.
func StatusFor(err error) (int, gen.ErrorResponseErrorCode) {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument),
		errors.Is(err, prhealth.ErrMalformedRepositoryURL):
		return http.StatusBadRequest, gen.BADREQUEST
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrUnauthenticated):
		return http.StatusUnauthorized, gen.UNAUTHORIZED
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden, gen.FORBIDDEN
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrProjectNotFound),
		errors.Is(err, usecase.ErrNotAssigned):
		return http.StatusNotFound, gen.NOTFOUND
	case errors.Is(err, usecase.ErrEmailTaken):
		return http.StatusConflict, gen.CONFLICT
	case errors.Is(err, prhealth.ErrSourceUnavailable):
		return http.StatusBadGateway, gen.UPSTREAMERROR
	default:
		return http.StatusInternalServerError, gen.INTERNAL
	}
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := StatusFor(err)

	message := err.Error()
	switch status {
	case http.StatusBadGateway:
		h.log.Warnw("upstream failure", "path", r.URL.Path, "error", err)
		message = upstreamMessage
	case http.StatusInternalServerError:
		h.log.Errorw("request failed", "path", r.URL.Path, "error", err)
	}

	WriteError(w, status, ErrorBody(code, message))
}

type actorKey struct{}

// WithActor stores the authenticated caller in ctx.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entity.Actor)
	return actor, ok
}

func (h *Handlers) actor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, ErrorBody(gen.UNAUTHORIZED, "missing bearer token"))
		return entity.Actor{}, false
	}
	return actor, true
}
