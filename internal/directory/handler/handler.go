package handler

import (
	"net/http"

	"texportal_backend/internal/directory/service"
	"texportal_backend/internal/directory/transport"
	"texportal_backend/platform/config"
	"texportal_backend/platform/httpkit"
	"texportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
	app config.AppConfig
}

func New(svc *service.Service, val *validator.Validator, app config.AppConfig) *Handler {
	return &Handler{svc: svc, val: val, app: app}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.ListLeads)
	rg.PATCH("/leads/:id/status", h.UpdateLeadStatus)
	rg.POST("/leads/:id/convert", h.ConvertProspect)
	rg.GET("/quotes", h.ListQuotes)
	rg.GET("/quotes/:id/qr", h.QuoteQR)
	rg.GET("/orders", h.ListOrders)
	rg.GET("/customers", h.ListCustomers)
	rg.GET("/inventory", h.ListInventory)
	rg.GET("/analytics", h.ListAnalytics)
	rg.GET("/payments", h.ListPayments)
	rg.POST("/payments/:id/record", h.RecordPayment)
	rg.GET("/invoices", h.ListInvoices)
}

func (h *Handler) ListLeads(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Leads()))
}

func (h *Handler) ListQuotes(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Quotes()))
}

func (h *Handler) ListOrders(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Orders()))
}

func (h *Handler) ListCustomers(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Customers()))
}

func (h *Handler) ListInventory(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Inventory()))
}

func (h *Handler) ListAnalytics(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Analytics()))
}

func (h *Handler) ListPayments(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Payments()))
}

func (h *Handler) ListInvoices(c *gin.Context) {
	httpkit.OK(c, transport.NewListResponse(h.svc.Store().Invoices()))
}

func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	var req transport.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.SetLeadStatus(c.Request.Context(), c.Param("id"), req.Status); httpkit.HandleError(c, err) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ConvertProspect(c *gin.Context) {
	customer, err := h.svc.ConvertProspect(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ConvertProspectResponse{Customer: customer})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	payment, err := h.svc.RecordPayment(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.RecordPaymentResponse{Payment: payment})
}

// QuoteQR renders a PNG QR code pointing at the public quote page.
func (h *Handler) QuoteQR(c *gin.Context) {
	link, err := h.svc.QuoteShareLink(h.app.GetAppBaseURL(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "qr generation failed", nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
