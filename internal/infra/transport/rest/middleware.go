package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/handlers"
)

// Authenticate resolves the bearer token of operations that declare
// bearerAuth security and stores the caller in the request context.
func Authenticate(auth usecase.AuthUseCase, log *zap.SugaredLogger) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(gen.BearerAuthScopes) == nil {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				handlers.WriteError(w, http.StatusUnauthorized,
					handlers.ErrorBody(gen.UNAUTHORIZED, "missing or malformed authorization header"))
				return
			}

			actor, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				status, code := handlers.StatusFor(err)
				if status == http.StatusInternalServerError {
					log.Errorw("authentication failed", "error", err)
				}
				handlers.WriteError(w, status, handlers.ErrorBody(code, err.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// ValidateRequests checks requests against the OpenAPI document before they
// reach the handlers. Requests for paths the document does not describe pass through.
func ValidateRequests(doc *openapi3.T) (gen.MiddlewareFunc, error) {
	// match on path only, whatever host the server is reached through
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				handlers.WriteError(w, http.StatusBadRequest, handlers.ErrorBody(gen.BADREQUEST, err.Error()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// RequestLogger writes one structured line per request.
func RequestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Infow("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}
