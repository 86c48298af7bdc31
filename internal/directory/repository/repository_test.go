package repository

import (
	"errors"
	"testing"

	"texportal_backend/internal/directory/domain"
)

func fixtureStore() *Store {
	s := NewEmpty()
	s.Load(
		[]domain.Lead{
			{ID: "LD-1", CustomerName: "Rajesh Patel", Location: "Surat", Phone: "+91 98251 12345", Priority: domain.PriorityHot, Status: domain.LeadStatusNew, Tags: []string{"cotton"}},
			{ID: "LD-2", CustomerName: "Suresh Shah", Location: "Ahmedabad", Status: domain.LeadStatusContacted},
		},
		nil, nil,
		[]domain.Customer{
			{ID: "CU-1", Name: "Meena Textiles", Location: "Mumbai", Phone: "+91 98200 11111", OutstandingPaise: 500000},
		},
		nil, nil,
		[]domain.Payment{
			{ID: "PY-1", CustomerName: "Meena Textiles", AmountPaise: 300000, Status: domain.PaymentStatusPending},
			{ID: "PY-2", CustomerName: "Meena Textiles", AmountPaise: 900000, Status: domain.PaymentStatusOverdue},
		},
		nil,
	)
	return s
}

func TestSeedDatasetLoads(t *testing.T) {
	s, err := NewSeeded()
	if err != nil {
		t.Fatalf("seed load failed: %v", err)
	}
	if len(s.Leads()) == 0 || len(s.Customers()) == 0 || len(s.Quotes()) == 0 {
		t.Fatal("seed dataset is missing core collections")
	}
}

func TestSnapshotAccessorsReturnCopies(t *testing.T) {
	s := fixtureStore()

	leads := s.Leads()
	leads[0].CustomerName = "mutated"

	if s.Leads()[0].CustomerName != "Rajesh Patel" {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}

func TestFindContactPrefersCustomersOverLeads(t *testing.T) {
	s := NewEmpty()
	s.Load(
		[]domain.Lead{{ID: "LD-1", CustomerName: "Meena Patel", Phone: "+91 90000 00001"}},
		nil, nil,
		[]domain.Customer{{ID: "CU-1", Name: "Meena Textiles", Phone: "+91 90000 00002"}},
		nil, nil, nil, nil,
	)

	contact, ok := s.FindContact("meena")
	if !ok {
		t.Fatal("expected a contact match")
	}
	if contact.Kind != "customer" || contact.Phone != "+91 90000 00002" {
		t.Fatalf("expected customer to win, got %+v", contact)
	}
}

func TestFindContactSubstringMatchOnLeads(t *testing.T) {
	s := fixtureStore()

	contact, ok := s.FindContact("rajesh")
	if !ok {
		t.Fatal("expected a lead match")
	}
	if contact.Kind != "lead" || contact.Name != "Rajesh Patel" {
		t.Fatalf("unexpected contact %+v", contact)
	}

	if _, ok := s.FindContact(""); ok {
		t.Fatal("blank name must not match")
	}
	if _, ok := s.FindContact("nobody"); ok {
		t.Fatal("unknown name must not match")
	}
}

func TestRecordPaymentReducesOutstanding(t *testing.T) {
	s := fixtureStore()

	p, err := s.RecordPayment("PY-1")
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if p.Status != domain.PaymentStatusReceived {
		t.Fatalf("payment status %q, want received", p.Status)
	}

	if got := s.Customers()[0].OutstandingPaise; got != 200000 {
		t.Fatalf("outstanding %d, want 200000", got)
	}
}

func TestRecordPaymentIsIdempotent(t *testing.T) {
	s := fixtureStore()

	if _, err := s.RecordPayment("PY-1"); err != nil {
		t.Fatalf("first record failed: %v", err)
	}
	if _, err := s.RecordPayment("PY-1"); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("second record: got %v, want ErrAlreadyApplied", err)
	}

	// Outstanding must only have been reduced once.
	if got := s.Customers()[0].OutstandingPaise; got != 200000 {
		t.Fatalf("outstanding %d, want 200000", got)
	}
}

func TestRecordPaymentOutstandingNeverGoesNegative(t *testing.T) {
	s := fixtureStore()

	// PY-2 is larger than the remaining balance.
	if _, err := s.RecordPayment("PY-2"); err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if got := s.Customers()[0].OutstandingPaise; got != 0 {
		t.Fatalf("outstanding %d, want 0", got)
	}
}

func TestRecordPaymentUnknownID(t *testing.T) {
	s := fixtureStore()
	if _, err := s.RecordPayment("PY-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestConvertProspectCreatesCustomer(t *testing.T) {
	s := fixtureStore()

	customer, err := s.ConvertProspect("LD-1")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if customer.ID != "CU-5001" {
		t.Fatalf("customer ID %q, want CU-5001", customer.ID)
	}
	if customer.Name != "Rajesh Patel" || customer.Phone != "+91 98251 12345" {
		t.Fatalf("customer fields not carried over: %+v", customer)
	}

	lead, ok := s.Lead("LD-1")
	if !ok || lead.Status != domain.LeadStatusConverted {
		t.Fatalf("lead not marked converted: %+v", lead)
	}

	found := false
	for _, c := range s.Customers() {
		if c.ID == "CU-5001" {
			found = true
		}
	}
	if !found {
		t.Fatal("new customer missing from store")
	}
}

func TestConvertProspectTwiceFails(t *testing.T) {
	s := fixtureStore()

	if _, err := s.ConvertProspect("LD-1"); err != nil {
		t.Fatalf("first convert failed: %v", err)
	}
	if _, err := s.ConvertProspect("LD-1"); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("second convert: got %v, want ErrAlreadyApplied", err)
	}

	// Sequence must advance exactly once.
	customer, err := s.ConvertProspect("LD-2")
	if err != nil {
		t.Fatalf("converting second lead failed: %v", err)
	}
	if customer.ID != "CU-5002" {
		t.Fatalf("customer ID %q, want CU-5002", customer.ID)
	}
}

func TestSetLeadStatus(t *testing.T) {
	s := fixtureStore()

	if err := s.SetLeadStatus("LD-1", domain.LeadStatusQuoted); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	lead, _ := s.Lead("LD-1")
	if lead.Status != domain.LeadStatusQuoted {
		t.Fatalf("status %q, want quoted", lead.Status)
	}

	if err := s.SetLeadStatus("LD-404", domain.LeadStatusLost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
