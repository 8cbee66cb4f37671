package handlers

import (
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

var _ gen.ServerInterface = (*Handlers)(nil)

type Handlers struct {
	gen.Unimplemented
	service usecase.Service
	log     *zap.SugaredLogger
}

func NewHandlers(service usecase.Service, log *zap.SugaredLogger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.Named("handlers"),
	}
}
