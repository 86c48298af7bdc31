package transport

import "texportal_backend/internal/directory/domain"

// ListResponse wraps an entity collection with its count.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse builds a ListResponse from a snapshot slice.
func NewListResponse[T any](items []T) ListResponse[T] {
	return ListResponse[T]{Items: items, Total: len(items)}
}

// RecordPaymentResponse is returned after a payment is marked received.
type RecordPaymentResponse struct {
	Payment domain.Payment `json:"payment"`
}

// ConvertProspectResponse is returned after a lead is converted.
type ConvertProspectResponse struct {
	Customer domain.Customer `json:"customer"`
}

// UpdateLeadStatusRequest changes a lead's pipeline status.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted quoted converted lost"`
}
