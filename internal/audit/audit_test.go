package audit

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"texportal_backend/internal/events"
	"texportal_backend/platform/logger"
)

func newCaptureLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{
		Logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func TestTrailLogsEveryDomainEvent(t *testing.T) {
	cases := []struct {
		event events.Event
		want  string
	}{
		{events.SearchPerformed{BaseEvent: events.NewBaseEvent(), Query: "cotton", Screen: "leads", Results: 3}, "audit search performed"},
		{events.VoiceCommandClassified{BaseEvent: events.NewBaseEvent(), Language: "gu", Intent: "navigate", Recognized: true}, "audit voice command"},
		{events.ScreenNavigated{BaseEvent: events.NewBaseEvent(), SessionID: "s1", Screen: "leads", Trigger: "voice"}, "audit screen navigated"},
		{events.ProspectConverted{BaseEvent: events.NewBaseEvent(), LeadID: "LD-1001", CustomerID: "CU-5001", Name: "Rajesh Patel"}, "audit prospect converted"},
		{events.PaymentRecorded{BaseEvent: events.NewBaseEvent(), PaymentID: "PY-7002", Customer: "Gujarat Garments", AmountPaise: 15500000}, "audit payment recorded"},
		{events.EnquiryReceived{BaseEvent: events.NewBaseEvent(), Name: "Kiran Shah", Email: "kiran@example.com", Subject: "Shah Fabrics"}, "audit enquiry received"},
		{events.FollowUpScheduled{BaseEvent: events.NewBaseEvent(), LeadID: "LD-1002", RunAt: "2026-09-05T10:00:00Z"}, "audit follow-up scheduled"},
	}

	for _, tc := range cases {
		t.Run(tc.event.EventName(), func(t *testing.T) {
			var buf bytes.Buffer
			trail := New(newCaptureLogger(&buf))

			bus := events.NewInMemoryBus(newCaptureLogger(&buf))
			trail.RegisterHandlers(bus)

			// PublishSync proves the subscription is actually registered:
			// an unsubscribed event would leave the buffer empty.
			if err := bus.PublishSync(context.Background(), tc.event); err != nil {
				t.Fatalf("publish failed: %v", err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("log output %q does not contain %q", buf.String(), tc.want)
			}
		})
	}
}
