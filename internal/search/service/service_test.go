package service

import (
	"context"
	"testing"

	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
	"texportal_backend/internal/search/scope"
	"texportal_backend/internal/search/transport"
	"texportal_backend/platform/logger"
)

type nullState struct{}

func (nullState) SetLeadFilter(context.Context, string, string) error           { return nil }
func (nullState) SetStatusFilter(context.Context, string, string, string) error { return nil }
func (nullState) SetSelectedCustomer(context.Context, string, string) error     { return nil }

func newSeededService(t *testing.T, mode scope.Mode) *Service {
	t.Helper()

	store, err := repository.NewSeeded()
	if err != nil {
		t.Fatalf("seed load failed: %v", err)
	}

	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	dispatcher := navigation.NewDispatcher(nullState{}, bus, log)
	eng := engine.New(log, engine.DirectorySources(store)...)

	return New(eng, scope.NewResolver(mode), dispatcher, bus, log)
}

func categoriesOf(items []transport.SearchResultItem) map[engine.Category]bool {
	set := map[engine.Category]bool{}
	for _, item := range items {
		set[item.Category] = true
	}
	return set
}

func TestSearchGlobalScopeSpansCategories(t *testing.T) {
	svc := newSeededService(t, scope.ModeGlobal)

	resp, err := svc.Search(context.Background(), transport.SearchRequest{Query: "cotton", Screen: "payments"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if resp.Total == 0 {
		t.Fatal("expected cotton hits in the seed dataset")
	}

	got := categoriesOf(resp.Items)
	for _, want := range []engine.Category{
		engine.CategoryLead,
		engine.CategoryQuote,
		engine.CategoryOrder,
		engine.CategoryInventoryItem,
	} {
		if !got[want] {
			t.Fatalf("global cotton search missing category %s, got %v", want, got)
		}
	}
	if got[engine.CategoryPayment] {
		t.Fatalf("no payment mentions cotton, yet one matched: %v", resp.Items)
	}
}

func TestSearchComponentScopeRestrictsToScreen(t *testing.T) {
	svc := newSeededService(t, scope.ModeComponent)

	// Mumbai appears on leads, quotes and customers; the leads screen in
	// component mode must only surface the lead.
	resp, err := svc.Search(context.Background(), transport.SearchRequest{Query: "Mumbai", Screen: navigation.ScreenLeads})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if resp.Total == 0 {
		t.Fatal("expected a Mumbai lead in the seed dataset")
	}
	for _, item := range resp.Items {
		if item.Category != engine.CategoryLead {
			t.Fatalf("component mode leaked category %s: %+v", item.Category, item)
		}
	}

	// The same query from the same screen in global mode spans categories.
	global, err := newSeededService(t, scope.ModeGlobal).Search(context.Background(),
		transport.SearchRequest{Query: "Mumbai", Screen: navigation.ScreenLeads})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if global.Total <= resp.Total {
		t.Fatalf("global Mumbai search (%d hits) should exceed component scope (%d)", global.Total, resp.Total)
	}
	got := categoriesOf(global.Items)
	if !got[engine.CategoryCustomer] || !got[engine.CategoryQuote] {
		t.Fatalf("global Mumbai search missing customer or quote hits: %v", got)
	}
}
