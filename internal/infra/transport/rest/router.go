package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/handlers"
)

const specPath = "/openapi.yaml"

func NewRouter(service usecase.Service, log *zap.SugaredLogger) (http.Handler, error) {
	doc, err := gen.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(log.Named("http")))
	r.Use(chimiddleware.Recoverer)

	r.Get(specPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(gen.RawSpec())
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(specPath)))

	gen.HandlerWithOptions(handlers.NewHandlers(service, log), gen.ChiServerOptions{
		BaseRouter: r,
		// last entry runs first
		Middlewares:      []gen.MiddlewareFunc{validate, Authenticate(service, log)},
		ErrorHandlerFunc: paramError,
	})

	return r, nil
}

func paramError(w http.ResponseWriter, _ *http.Request, err error) {
	message := err.Error()
	var paramErr *gen.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		message = "invalid " + paramErr.ParamName
	}
	handlers.WriteError(w, http.StatusBadRequest, handlers.ErrorBody(gen.BADREQUEST, message))
}
