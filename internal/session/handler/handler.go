package handler

import (
	"texportal_backend/internal/session/store"
	"texportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *store.Store
}

func New(st *store.Store) *Handler {
	return &Handler{store: st}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/state", h.State)
	rg.DELETE("/state", h.Clear)
}

// State returns the caller's UI state blob. The client renders the screen
// and filters this names after every dispatched command.
func (h *Handler) State(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	st, err := h.store.Get(c.Request.Context(), identity.UserID().String())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, st)
}

func (h *Handler) Clear(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	if err := h.store.Clear(c.Request.Context(), identity.UserID().String()); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"cleared": true})
}
