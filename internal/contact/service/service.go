package service

import (
	"context"

	"texportal_backend/internal/contact/email"
	"texportal_backend/internal/contact/transport"
	"texportal_backend/internal/events"
	"texportal_backend/platform/apperr"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/phone"
)

type Service struct {
	sender email.Sender
	bus    events.Bus
	log    *logger.Logger
}

func New(sender email.Sender, bus events.Bus, log *logger.Logger) *Service {
	return &Service{sender: sender, bus: bus, log: log}
}

// SubmitEnquiry delivers the enquiry to the owner's inbox and publishes
// the received event. Delivery failure is surfaced to the caller; the
// form should not pretend a lost enquiry arrived.
func (s *Service) SubmitEnquiry(ctx context.Context, req transport.EnquiryRequest) (*transport.EnquiryResponse, error) {
	phoneNumber := req.Phone
	if phoneNumber != "" {
		phoneNumber = phone.NormalizeE164(phoneNumber)
	}

	if err := s.sender.SendEnquiryEmail(ctx, req.Name, req.Email, phoneNumber, req.Company, req.Message); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "enquiry delivery failed", err).WithOp("contact.SubmitEnquiry")
	}

	s.log.Info("enquiry received", "name", req.Name, "email", req.Email)
	s.bus.Publish(ctx, events.EnquiryReceived{
		BaseEvent: events.NewBaseEvent(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Company,
	})

	return &transport.EnquiryResponse{Received: true}, nil
}
