package session

import (
	apphttp "texportal_backend/internal/http"
	"texportal_backend/internal/session/handler"
	"texportal_backend/internal/session/store"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(st *store.Store) *Module {
	return &Module{handler: handler.New(st)}
}

func (m *Module) Name() string {
	return "session"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/session")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
