package http

import (
	"texportal_backend/internal/events"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"
)

// RouterConfig narrows the app config to what the router actually reads.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// App is what the composition root hands the router: shared dependencies
// plus the module list in mount order.
type App struct {
	Config   RouterConfig
	Logger   *logger.Logger
	EventBus events.Bus
	Modules  []Module
}
