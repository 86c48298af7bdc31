package search

import (
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
	"texportal_backend/internal/search/handler"
	"texportal_backend/internal/search/scope"
	"texportal_backend/internal/search/service"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"
)

type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

func NewModule(dir engine.Directory, scopes *scope.Resolver, dispatcher *navigation.Dispatcher,
	bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	eng := engine.New(log, engine.DirectorySources(dir)...)
	svc := service.New(eng, scopes, dispatcher, bus, log)
	h := handler.New(svc, val)

	return &Module{svc: svc, handler: h}
}

// Service exposes the search service for the voice module's search fallback.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) Name() string {
	return "search"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/search")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
