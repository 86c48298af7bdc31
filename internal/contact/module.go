package contact

import (
	"texportal_backend/internal/contact/email"
	"texportal_backend/internal/contact/handler"
	"texportal_backend/internal/contact/service"
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(cfg config.EmailConfig, bus events.Bus, log *logger.Logger, val *validator.Validator) *Module {
	var sender email.Sender = email.NoopSender{}
	if cfg.GetEmailEnabled() {
		sender = email.NewSMTPSender(cfg)
	}

	svc := service.New(sender, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "contact"
}

// The enquiry form is public and a spam magnet, so it shares the strict
// auth rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/contact")
	group.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
