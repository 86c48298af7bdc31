package service

import (
	"context"
	"errors"
	"testing"

	"texportal_backend/internal/contact/transport"
	"texportal_backend/internal/events"
	"texportal_backend/platform/apperr"
	"texportal_backend/platform/logger"
)

type captureSender struct {
	err error

	name, fromEmail, phone, company, message string
	calls                                    int
}

func (s *captureSender) SendEnquiryEmail(_ context.Context, name, fromEmail, phone, company, message string) error {
	s.calls++
	s.name, s.fromEmail, s.phone, s.company, s.message = name, fromEmail, phone, company, message
	return s.err
}

type captureBus struct {
	published []events.Event
}

func (b *captureBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *captureBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *captureBus) Subscribe(string, events.Handler) {}

func TestSubmitEnquiryDeliversAndPublishes(t *testing.T) {
	sender := &captureSender{}
	bus := &captureBus{}
	svc := New(sender, bus, logger.New("test"))

	resp, err := svc.SubmitEnquiry(context.Background(), transport.EnquiryRequest{
		Name:    "Kiran Shah",
		Email:   "kiran@example.com",
		Phone:   "98251 12345",
		Company: "Shah Fabrics",
		Message: "Need pricing for 500m cotton.",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !resp.Received {
		t.Fatalf("unexpected response %+v", resp)
	}

	if sender.calls != 1 {
		t.Fatalf("sender called %d times", sender.calls)
	}
	if sender.phone != "+919825112345" {
		t.Fatalf("phone was not normalized, got %q", sender.phone)
	}
	if sender.name != "Kiran Shah" || sender.company != "Shah Fabrics" {
		t.Fatalf("unexpected sender args %+v", sender)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	received, ok := bus.published[0].(events.EnquiryReceived)
	if !ok {
		t.Fatalf("unexpected event %T", bus.published[0])
	}
	if received.Name != "Kiran Shah" || received.Email != "kiran@example.com" || received.Subject != "Shah Fabrics" {
		t.Fatalf("unexpected event payload %+v", received)
	}
}

func TestSubmitEnquiryKeepsEmptyPhoneEmpty(t *testing.T) {
	sender := &captureSender{}
	svc := New(sender, &captureBus{}, logger.New("test"))

	if _, err := svc.SubmitEnquiry(context.Background(), transport.EnquiryRequest{
		Name:    "Kiran Shah",
		Email:   "kiran@example.com",
		Message: "hello",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sender.phone != "" {
		t.Fatalf("empty phone must stay empty, got %q", sender.phone)
	}
}

func TestSubmitEnquirySurfacesDeliveryFailure(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp connect refused")}
	bus := &captureBus{}
	svc := New(sender, bus, logger.New("test"))

	_, err := svc.SubmitEnquiry(context.Background(), transport.EnquiryRequest{
		Name:    "Kiran Shah",
		Email:   "kiran@example.com",
		Message: "hello",
	})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("failed delivery must not publish events, got %v", bus.published)
	}
}
