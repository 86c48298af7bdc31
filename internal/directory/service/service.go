package service

import (
	"context"
	"errors"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	"texportal_backend/platform/apperr"
)

type Service struct {
	store *repository.Store
	bus   events.Bus
}

func New(store *repository.Store, bus events.Bus) *Service {
	return &Service{store: store, bus: bus}
}

// Store exposes the underlying directory store for modules that consume
// snapshots directly (search adapters, voice contact resolution).
func (s *Service) Store() *repository.Store {
	return s.store
}

// RecordPayment marks a payment as received. Re-recording an already
// received payment is treated as a successful no-op so a double-tapped
// button cannot corrupt state.
func (s *Service) RecordPayment(ctx context.Context, id string) (domain.Payment, error) {
	payment, err := s.store.RecordPayment(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.Payment{}, apperr.NotFound("payment not found").WithOp("directory.RecordPayment")
	case errors.Is(err, repository.ErrAlreadyApplied):
		return payment, nil
	case err != nil:
		return domain.Payment{}, apperr.Wrap(apperr.KindInternal, "record payment failed", err).WithOp("directory.RecordPayment")
	}

	s.bus.Publish(ctx, events.PaymentRecorded{
		BaseEvent:   events.NewBaseEvent(),
		PaymentID:   payment.ID,
		Customer:    payment.CustomerName,
		AmountPaise: payment.AmountPaise,
	})
	return payment, nil
}

// ConvertProspect converts a lead into a customer.
func (s *Service) ConvertProspect(ctx context.Context, leadID string) (domain.Customer, error) {
	customer, err := s.store.ConvertProspect(leadID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return domain.Customer{}, apperr.NotFound("lead not found").WithOp("directory.ConvertProspect")
	case errors.Is(err, repository.ErrAlreadyApplied):
		return domain.Customer{}, apperr.Conflict("lead already converted").WithOp("directory.ConvertProspect")
	case err != nil:
		return domain.Customer{}, apperr.Wrap(apperr.KindInternal, "convert prospect failed", err).WithOp("directory.ConvertProspect")
	}

	s.bus.Publish(ctx, events.ProspectConverted{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     leadID,
		CustomerID: customer.ID,
		Name:       customer.Name,
	})
	return customer, nil
}

// SetLeadStatus updates a lead's pipeline status.
func (s *Service) SetLeadStatus(_ context.Context, id, status string) error {
	if err := s.store.SetLeadStatus(id, status); err != nil {
		return apperr.NotFound("lead not found").WithOp("directory.SetLeadStatus")
	}
	return nil
}

// QuoteShareLink returns the public link for a quote, for QR rendering.
func (s *Service) QuoteShareLink(baseURL, quoteID string) (string, error) {
	quote, ok := s.store.Quote(quoteID)
	if !ok {
		return "", apperr.NotFound("quote not found").WithOp("directory.QuoteShareLink")
	}
	return baseURL + "/quotes/" + quote.ID, nil
}
