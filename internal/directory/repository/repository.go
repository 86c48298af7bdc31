// Package repository holds the in-memory directory store. There is no
// database behind it: the whole dataset lives in process memory and is
// seeded from an embedded YAML fixture. Mutations go through a small,
// explicit API so every state change is auditable and testable.
package repository

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"texportal_backend/internal/directory/domain"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedData []byte

type dataset struct {
	Leads     []domain.Lead          `yaml:"leads"`
	Quotes    []domain.Quote         `yaml:"quotes"`
	Orders    []domain.Order         `yaml:"orders"`
	Customers []domain.Customer      `yaml:"customers"`
	Inventory []domain.InventoryItem `yaml:"inventory"`
	Analytics []domain.AnalyticsFact `yaml:"analytics"`
	Payments  []domain.Payment       `yaml:"payments"`
	Invoices  []domain.Invoice       `yaml:"invoices"`
}

// Store is the single source of truth for business records. Snapshot
// accessors return copies in insertion order; callers can never mutate the
// underlying collections through a returned slice.
type Store struct {
	mu   sync.RWMutex
	data dataset

	nextCustomerSeq int
}

// NewSeeded creates a store populated from the embedded demo dataset.
func NewSeeded() (*Store, error) {
	var data dataset
	if err := yaml.Unmarshal(seedData, &data); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}
	return &Store{data: data, nextCustomerSeq: 5001}, nil
}

// NewEmpty creates a store with no records. Used by tests that load their own fixtures.
func NewEmpty() *Store {
	return &Store{nextCustomerSeq: 5001}
}

// Load replaces the store contents with the given collections.
func (s *Store) Load(leads []domain.Lead, quotes []domain.Quote, orders []domain.Order,
	customers []domain.Customer, inventory []domain.InventoryItem,
	analytics []domain.AnalyticsFact, payments []domain.Payment, invoices []domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = dataset{
		Leads:     leads,
		Quotes:    quotes,
		Orders:    orders,
		Customers: customers,
		Inventory: inventory,
		Analytics: analytics,
		Payments:  payments,
		Invoices:  invoices,
	}
}

// =============================================================================
// Snapshot accessors
// =============================================================================

func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Lead(nil), s.data.Leads...)
}

func (s *Store) Quotes() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Quote(nil), s.data.Quotes...)
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.data.Orders...)
}

func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Customer(nil), s.data.Customers...)
}

func (s *Store) Inventory() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.InventoryItem(nil), s.data.Inventory...)
}

func (s *Store) Analytics() []domain.AnalyticsFact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AnalyticsFact(nil), s.data.Analytics...)
}

func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Payment(nil), s.data.Payments...)
}

func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.data.Invoices...)
}

// =============================================================================
// Lookups
// =============================================================================

// Lead returns the lead with the given ID.
func (s *Store) Lead(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.data.Leads {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lead{}, false
}

// Quote returns the quote with the given ID.
func (s *Store) Quote(id string) (domain.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.data.Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quote{}, false
}

// Customer returns the customer with the given ID.
func (s *Store) Customer(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// FindContact resolves a person or firm name to a dialable contact.
// Customers win over leads when both match; matching is a case-insensitive
// substring check so "rajesh" finds "Rajesh Patel".
func (s *Store) FindContact(name string) (domain.Contact, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return domain.Contact{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.data.Customers {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return domain.Contact{Name: c.Name, Phone: c.Phone, Kind: "customer"}, true
		}
	}
	for _, l := range s.data.Leads {
		if strings.Contains(strings.ToLower(l.CustomerName), needle) {
			return domain.Contact{Name: l.CustomerName, Phone: l.Phone, Kind: "lead"}, true
		}
	}
	return domain.Contact{}, false
}

// =============================================================================
// Mutations
// =============================================================================

// ErrNotFound is returned when a mutation references a record that does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// ErrAlreadyApplied is returned when a mutation has already taken effect.
var ErrAlreadyApplied = fmt.Errorf("mutation already applied")

// RecordPayment marks a pending or overdue payment as received and reduces
// the owing customer's outstanding balance. Recording an already-received
// payment returns ErrAlreadyApplied and changes nothing.
func (s *Store) RecordPayment(id string) (domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Payments {
		p := &s.data.Payments[i]
		if p.ID != id {
			continue
		}
		if p.Status == domain.PaymentStatusReceived {
			return *p, ErrAlreadyApplied
		}
		p.Status = domain.PaymentStatusReceived
		for j := range s.data.Customers {
			c := &s.data.Customers[j]
			if c.Name == p.CustomerName {
				c.OutstandingPaise -= p.AmountPaise
				if c.OutstandingPaise < 0 {
					c.OutstandingPaise = 0
				}
				break
			}
		}
		return *p, nil
	}
	return domain.Payment{}, ErrNotFound
}

// ConvertProspect converts a lead into a customer. The lead is marked
// converted and a new customer record is appended. Converting an already
// converted lead returns ErrAlreadyApplied.
func (s *Store) ConvertProspect(leadID string) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Leads {
		l := &s.data.Leads[i]
		if l.ID != leadID {
			continue
		}
		if l.Status == domain.LeadStatusConverted {
			return domain.Customer{}, ErrAlreadyApplied
		}
		l.Status = domain.LeadStatusConverted

		customer := domain.Customer{
			ID:       fmt.Sprintf("CU-%d", s.nextCustomerSeq),
			Name:     l.CustomerName,
			Location: l.Location,
			Phone:    l.Phone,
			Since:    l.CreatedAt,
			Tags:     append([]string(nil), l.Tags...),
		}
		s.nextCustomerSeq++
		s.data.Customers = append(s.data.Customers, customer)
		return customer, nil
	}
	return domain.Customer{}, ErrNotFound
}

// SetLeadStatus updates a lead's pipeline status.
func (s *Store) SetLeadStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Leads {
		if s.data.Leads[i].ID == id {
			s.data.Leads[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
