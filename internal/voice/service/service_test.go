package service

import (
	"context"
	"strings"
	"testing"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
	"texportal_backend/internal/search/scope"
	searchservice "texportal_backend/internal/search/service"
	"texportal_backend/internal/voice/transport"
	"texportal_backend/platform/logger"
)

type sessionRecorder struct {
	ops []string
}

func (r *sessionRecorder) SetLeadFilter(_ context.Context, _, filter string) error {
	r.ops = append(r.ops, "leadFilter="+filter)
	return nil
}

func (r *sessionRecorder) SetStatusFilter(_ context.Context, _, screen, status string) error {
	r.ops = append(r.ops, "statusFilter="+screen+":"+status)
	return nil
}

func (r *sessionRecorder) SetSelectedCustomer(_ context.Context, _, customerID string) error {
	r.ops = append(r.ops, "customer="+customerID)
	return nil
}

func (r *sessionRecorder) SetCurrentScreen(_ context.Context, _, screen string) error {
	r.ops = append(r.ops, "screen="+screen)
	return nil
}

func newVoiceFixture(t *testing.T) (*Service, *sessionRecorder) {
	t.Helper()

	store := repository.NewEmpty()
	store.Load(
		[]domain.Lead{
			{ID: "LD-1", CustomerName: "Rajesh Patel", Location: "Surat", Material: "cotton", Priority: domain.PriorityHot, Status: domain.LeadStatusNew, Phone: "+91 98251 12345"},
		},
		nil, nil,
		[]domain.Customer{
			{ID: "CU-1", Name: "Meena Textiles", Location: "Mumbai", Phone: "+91 98200 11111"},
		},
		nil, nil, nil, nil,
	)

	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	recorder := &sessionRecorder{}

	dispatcher := navigation.NewDispatcher(recorder, bus, log)
	dispatcher.RegisterAll(navigation.NewSessionHandlers(recorder))

	eng := engine.New(log, engine.DirectorySources(store)...)
	scopes := scope.NewResolver(scope.ModeGlobal)
	searchSvc := searchservice.New(eng, scopes, dispatcher, bus, log)

	return New(store, searchSvc, dispatcher, bus, log), recorder
}

// assertSingleAction verifies a response carries at most one action kind.
func assertSingleAction(t *testing.T, resp *transport.CommandResponse) {
	t.Helper()
	actions := 0
	if resp.Navigation != nil {
		actions++
	}
	if resp.Contact != nil {
		actions++
	}
	if resp.Search != nil {
		actions++
	}
	if actions > 1 {
		t.Fatalf("response carries %d actions, want at most 1: %+v", actions, resp)
	}
}

func TestExecuteCallResolvesContact(t *testing.T) {
	svc, _ := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "call rajesh",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if !resp.Recognized || resp.Intent != "domain_action" {
		t.Fatalf("unexpected classification %+v", resp)
	}
	if resp.Contact == nil {
		t.Fatal("expected a contact action")
	}
	if resp.Contact.URL != "tel:+919825112345" {
		t.Fatalf("unexpected dial URL %q", resp.Contact.URL)
	}
	if resp.Message != "Calling Rajesh Patel" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestExecuteMessageBuildsWhatsAppLink(t *testing.T) {
	svc, _ := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "whatsapp meena",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if resp.Contact == nil {
		t.Fatal("expected a contact action")
	}
	if !strings.HasPrefix(resp.Contact.URL, "https://wa.me/919820011111") {
		t.Fatalf("unexpected whatsapp URL %q", resp.Contact.URL)
	}
	if resp.Contact.Kind != "customer" {
		t.Fatalf("customer must win the contact lookup, got %q", resp.Contact.Kind)
	}
}

func TestExecuteCallUnknownContact(t *testing.T) {
	svc, recorder := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "call nobody",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if resp.Contact != nil || resp.Navigation != nil || resp.Search != nil {
		t.Fatalf("failed lookup must produce no action: %+v", resp)
	}
	if !strings.Contains(resp.Message, "nobody") {
		t.Fatalf("message must name the missing contact, got %q", resp.Message)
	}
	if len(recorder.ops) != 0 {
		t.Fatalf("failed lookup must not touch the session, got %v", recorder.ops)
	}
}

func TestExecuteLeadFilterAppliesStateBeforeScreen(t *testing.T) {
	svc, recorder := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "show hot leads",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if resp.Navigation == nil || resp.Navigation.Screen != navigation.ScreenLeads {
		t.Fatalf("expected navigation to leads, got %+v", resp.Navigation)
	}
	if resp.Message != "Showing hot leads" {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	want := []string{"leadFilter=hot", "screen=" + navigation.ScreenLeads}
	if len(recorder.ops) != 2 || recorder.ops[0] != want[0] || recorder.ops[1] != want[1] {
		t.Fatalf("session ops %v, want %v", recorder.ops, want)
	}
}

func TestExecuteNavigate(t *testing.T) {
	svc, recorder := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "open payments",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if resp.Navigation == nil || resp.Navigation.Screen != navigation.ScreenPayments {
		t.Fatalf("expected navigation to payments, got %+v", resp.Navigation)
	}
	if len(recorder.ops) != 1 || recorder.ops[0] != "screen="+navigation.ScreenPayments {
		t.Fatalf("session ops %v", recorder.ops)
	}
}

func TestExecuteSearch(t *testing.T) {
	svc, _ := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "search for cotton",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if resp.Search == nil {
		t.Fatal("expected search results")
	}
	if resp.Search.Total != 1 || resp.Search.Items[0].ID != "LD-1" {
		t.Fatalf("unexpected search results %+v", resp.Search)
	}
}

func TestExecuteUnrecognizedFallsBackToSearch(t *testing.T) {
	svc, _ := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "mumbai something",
		Language:  "en",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	assertSingleAction(t, resp)

	if resp.Recognized {
		t.Fatal("utterance should be unrecognized")
	}
	if resp.Search == nil {
		t.Fatal("expected fallback search results")
	}
	// The raw utterance matches nothing, but the fallback still runs a
	// single search cycle and returns its (empty) result set.
	if resp.Search.Total != 0 {
		t.Fatalf("unexpected fallback hits %+v", resp.Search)
	}
}

func TestExecuteGujaratiCall(t *testing.T) {
	svc, _ := newVoiceFixture(t)

	resp, err := svc.Execute(context.Background(), "s1", transport.CommandRequest{
		Utterance: "rajesh ne call karo",
		Language:  "gu",
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if resp.Contact == nil {
		t.Fatal("expected a contact action")
	}
	if resp.Message != "Rajesh Patel ne call kari rahya chhie" {
		t.Fatalf("unexpected localized message %q", resp.Message)
	}
}
