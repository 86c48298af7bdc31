package handler

import (
	"texportal_backend/internal/content/service"
	"texportal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/blog", h.BlogIndex)
	rg.GET("/stories/:slug", h.Story)
}

func (h *Handler) BlogIndex(c *gin.Context) {
	posts, err := h.svc.BlogIndex(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"posts": posts})
}

func (h *Handler) Story(c *gin.Context) {
	body, err := h.svc.Story(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"slug": c.Param("slug"), "markdown": body})
}
