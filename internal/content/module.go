package content

import (
	"texportal_backend/internal/content/client"
	"texportal_backend/internal/content/handler"
	"texportal_backend/internal/content/service"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(cfg config.ContentConfig, log *logger.Logger) *Module {
	c := client.New(cfg)
	svc := service.New(c, log)
	h := handler.New(svc)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "content"
}

// Marketing content is public; the routes stay outside the auth group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/content")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
