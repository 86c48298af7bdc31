// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"texportal_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Search & Voice Domain Events
// =============================================================================

// SearchPerformed is published after every search pass.
type SearchPerformed struct {
	BaseEvent
	Query   string `json:"query"`
	Screen  string `json:"screen"`
	Results int    `json:"results"`
}

func (e SearchPerformed) EventName() string { return "search.performed" }

// VoiceCommandClassified is published when an utterance has been classified.
type VoiceCommandClassified struct {
	BaseEvent
	Language   string `json:"language"`
	Intent     string `json:"intent"`
	Recognized bool   `json:"recognized"`
}

func (e VoiceCommandClassified) EventName() string { return "voice.command.classified" }

// ScreenNavigated is published when a dispatch changes the visible screen.
type ScreenNavigated struct {
	BaseEvent
	SessionID string `json:"sessionId"`
	Screen    string `json:"screen"`
	Trigger   string `json:"trigger"` // "search_result", "voice", "direct"
}

func (e ScreenNavigated) EventName() string { return "navigation.screen.changed" }

// =============================================================================
// Directory Domain Events
// =============================================================================

// ProspectConverted is published when a lead is converted into a customer.
type ProspectConverted struct {
	BaseEvent
	LeadID     string `json:"leadId"`
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
}

func (e ProspectConverted) EventName() string { return "directory.prospect.converted" }

// PaymentRecorded is published when a pending payment is marked received.
type PaymentRecorded struct {
	BaseEvent
	PaymentID   string `json:"paymentId"`
	Customer    string `json:"customer"`
	AmountPaise int64  `json:"amountPaise"`
}

func (e PaymentRecorded) EventName() string { return "directory.payment.recorded" }

// =============================================================================
// Contact & Reminder Events
// =============================================================================

// EnquiryReceived is published when a contact form enquiry is accepted.
type EnquiryReceived struct {
	BaseEvent
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

func (e EnquiryReceived) EventName() string { return "contact.enquiry.received" }

// FollowUpScheduled is published when a lead follow-up reminder is queued.
type FollowUpScheduled struct {
	BaseEvent
	LeadID string `json:"leadId"`
	RunAt  string `json:"runAt"`
}

func (e FollowUpScheduled) EventName() string { return "reminders.followup.scheduled" }
