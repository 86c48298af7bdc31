package handler

import (
	"errors"
	"net/http"

	"texportal_backend/internal/auth/service"
	"texportal_backend/internal/auth/transport"
	"texportal_backend/platform/httpkit"
	"texportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sign-in", h.SignIn)
	rg.POST("/guest", h.Guest)
	rg.POST("/refresh", h.Refresh)
	rg.POST("/sign-out", h.SignOut)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req transport.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	tokens, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpkit.Error(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, tokens)
}

func (h *Handler) Guest(c *gin.Context) {
	tokens, err := h.svc.Guest(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, tokens)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req transport.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			httpkit.Error(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, tokens)
}

func (h *Handler) SignOut(c *gin.Context) {
	var req transport.SignOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.SignOut(c.Request.Context(), req.RefreshToken); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"signedOut": true})
}
