package reminders

import (
	"net/http"
	"time"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/events"
	apphttp "texportal_backend/internal/http"
	"texportal_backend/platform/httpkit"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// LeadReader resolves the lead a follow-up is being scheduled for.
type LeadReader interface {
	Lead(id string) (domain.Lead, bool)
}

type ScheduleFollowUpRequest struct {
	LeadID string `json:"leadId" validate:"required"`
	Note   string `json:"note" validate:"omitempty,max=500"`
	RunAt  string `json:"runAt" validate:"required"`
}

type ScheduleFollowUpResponse struct {
	LeadID string `json:"leadId"`
	RunAt  string `json:"runAt"`
}

type Module struct {
	scheduler FollowUpScheduler
	leads     LeadReader
	bus       events.Bus
	log       *logger.Logger
	val       *validator.Validator
}

func NewModule(scheduler FollowUpScheduler, leads LeadReader, bus events.Bus,
	log *logger.Logger, val *validator.Validator) *Module {
	return &Module{scheduler: scheduler, leads: leads, bus: bus, log: log, val: val}
}

func (m *Module) Name() string {
	return "reminders"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/reminders/followup", m.ScheduleFollowUp)
}

func (m *Module) ScheduleFollowUp(c *gin.Context) {
	var req ScheduleFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := m.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	runAt, err := time.Parse(time.RFC3339, req.RunAt)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "runAt must be RFC3339", nil)
		return
	}

	if _, ok := m.leads.Lead(req.LeadID); !ok {
		httpkit.Error(c, http.StatusNotFound, "lead not found", req.LeadID)
		return
	}

	if m.scheduler == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "reminders are not configured", nil)
		return
	}

	payload := LeadFollowUpPayload{LeadID: req.LeadID, Note: req.Note}
	if err := m.scheduler.ScheduleLeadFollowUp(c.Request.Context(), payload, runAt); err != nil {
		m.log.Error("schedule follow-up failed", "leadId", req.LeadID, "error", err)
		httpkit.Error(c, http.StatusServiceUnavailable, "could not schedule follow-up", nil)
		return
	}

	m.bus.Publish(c.Request.Context(), events.FollowUpScheduled{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    req.LeadID,
		RunAt:     runAt.Format(time.RFC3339),
	})

	httpkit.OK(c, ScheduleFollowUpResponse{LeadID: req.LeadID, RunAt: runAt.Format(time.RFC3339)})
}

var _ apphttp.Module = (*Module)(nil)
