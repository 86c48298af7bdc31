package auth

import (
	"texportal_backend/internal/auth/handler"
	"texportal_backend/internal/auth/repository"
	"texportal_backend/internal/auth/service"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(rdb *redis.Client, cfg config.AuthServiceConfig, log *logger.Logger, val *validator.Validator) (*Module, error) {
	repo, err := repository.New(rdb, cfg)
	if err != nil {
		return nil, err
	}
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h}, nil
}

func (m *Module) Name() string {
	return "auth"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/auth")
	group.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
