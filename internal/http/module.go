// Package http owns the server shell: the Module contract feature
// packages implement and the router that mounts them.
package http

import (
	"texportal_backend/platform/config"
	"texportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module is one feature area that knows how to mount its own routes. The
// router never learns individual endpoints; it only walks the module list.
type Module interface {
	// Name identifies the module in logs.
	Name() string
	// RegisterRoutes mounts the module's endpoints on the shared groups.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext bundles everything a module needs at registration time so
// RegisterRoutes keeps a single-argument signature.
type RouterContext struct {
	// Engine is the root Gin engine, for modules needing engine-level hooks.
	Engine *gin.Engine
	// V1 is the public /api/v1 group.
	V1 *gin.RouterGroup
	// Protected is the JWT-guarded group under /api/v1.
	Protected *gin.RouterGroup
	// Config exposes the JWT settings for middleware construction.
	Config config.JWTConfig
	// AuthMiddleware is the shared access-token check.
	AuthMiddleware gin.HandlerFunc
	// AuthRateLimiter throttles the credential endpoints harder than the
	// rest of the API.
	AuthRateLimiter *httpkit.AuthRateLimiter
}
