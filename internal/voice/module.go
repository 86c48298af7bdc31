package voice

import (
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/internal/navigation"
	searchservice "texportal_backend/internal/search/service"
	"texportal_backend/internal/voice/handler"
	"texportal_backend/internal/voice/service"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(contacts service.ContactDirectory, search *searchservice.Service,
	dispatcher *navigation.Dispatcher, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	svc := service.New(contacts, search, dispatcher, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "voice"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/voice")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
