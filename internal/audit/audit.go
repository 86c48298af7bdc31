// Package audit is the logging consumer of the domain event bus. Every
// event published anywhere in the application lands here and leaves a
// structured log line, so the bus always has at least one subscriber and
// event flow is visible in production logs.
package audit

import (
	"context"

	"texportal_backend/internal/events"
	"texportal_backend/platform/logger"
)

type Trail struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Trail {
	return &Trail{log: log}
}

// RegisterHandlers subscribes the trail to every domain event.
func (t *Trail) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.SearchPerformed{}.EventName(), t)
	bus.Subscribe(events.VoiceCommandClassified{}.EventName(), t)
	bus.Subscribe(events.ScreenNavigated{}.EventName(), t)
	bus.Subscribe(events.ProspectConverted{}.EventName(), t)
	bus.Subscribe(events.PaymentRecorded{}.EventName(), t)
	bus.Subscribe(events.EnquiryReceived{}.EventName(), t)
	bus.Subscribe(events.FollowUpScheduled{}.EventName(), t)
}

// Handle writes one log line per event with the fields worth querying for.
func (t *Trail) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.SearchPerformed:
		t.log.Debug("audit search performed", "query", e.Query, "screen", e.Screen, "results", e.Results)
	case events.VoiceCommandClassified:
		t.log.Info("audit voice command", "language", e.Language, "intent", e.Intent, "recognized", e.Recognized)
	case events.ScreenNavigated:
		t.log.Info("audit screen navigated", "session", e.SessionID, "screen", e.Screen, "trigger", e.Trigger)
	case events.ProspectConverted:
		t.log.Info("audit prospect converted", "lead", e.LeadID, "customer", e.CustomerID, "name", e.Name)
	case events.PaymentRecorded:
		t.log.Info("audit payment recorded", "payment", e.PaymentID, "customer", e.Customer, "amountPaise", e.AmountPaise)
	case events.EnquiryReceived:
		t.log.Info("audit enquiry received", "name", e.Name, "email", e.Email, "subject", e.Subject)
	case events.FollowUpScheduled:
		t.log.Info("audit follow-up scheduled", "lead", e.LeadID, "runAt", e.RunAt)
	default:
		t.log.Info("audit event", "event", event.EventName())
	}
	return nil
}

var _ events.Handler = (*Trail)(nil)
