package directory

import (
	"texportal_backend/internal/directory/handler"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/directory/service"
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/platform/config"
	"texportal_backend/platform/validator"
)

type Module struct {
	svc     *service.Service
	handler *handler.Handler
}

func NewModule(store *repository.Store, bus events.Bus, val *validator.Validator, app config.AppConfig) *Module {
	svc := service.New(store, bus)
	h := handler.New(svc, val, app)

	return &Module{svc: svc, handler: h}
}

// Service exposes the directory service for modules that depend on it
// (search adapters, voice contact resolution).
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) Name() string {
	return "directory"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected)
}

var _ apphttp.Module = (*Module)(nil)
