package scope

import (
	"reflect"
	"testing"

	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
)

func TestGlobalModeAlwaysReturnsFullSet(t *testing.T) {
	r := NewResolver(ModeGlobal)

	for _, screen := range []string{navigation.ScreenLeads, navigation.ScreenDashboard, "garbage", ""} {
		got := r.SearchScope(screen)
		if !reflect.DeepEqual(got, engine.AllCategories()) {
			t.Fatalf("screen %q: expected full category set, got %v", screen, got)
		}
	}
}

func TestComponentModeRestrictsToScreenTable(t *testing.T) {
	r := NewResolver(ModeComponent)

	cases := []struct {
		screen string
		want   engine.Scope
	}{
		{navigation.ScreenLeads, engine.Scope{engine.CategoryLead}},
		{navigation.ScreenPayments, engine.Scope{engine.CategoryPayment, engine.CategoryInvoice}},
		{navigation.ScreenCustomers, engine.Scope{engine.CategoryCustomer, engine.CategoryLead}},
		{navigation.ScreenCustomerProfile, engine.Scope{
			engine.CategoryCustomer, engine.CategoryOrder, engine.CategoryPayment, engine.CategoryInvoice,
		}},
	}
	for _, tc := range cases {
		got := r.SearchScope(tc.screen)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("screen %q: got %v, want %v", tc.screen, got, tc.want)
		}
	}
}

func TestComponentModeUnmappedScreenFallsBackToFullSet(t *testing.T) {
	r := NewResolver(ModeComponent)

	for _, screen := range []string{navigation.ScreenDashboard, "unknown-screen", ""} {
		got := r.SearchScope(screen)
		if !reflect.DeepEqual(got, engine.AllCategories()) {
			t.Fatalf("screen %q: expected fallback to full set, got %v", screen, got)
		}
	}
}

func TestVoiceScopeMatchesSearchScope(t *testing.T) {
	r := NewResolver(ModeComponent)

	for _, screen := range []string{navigation.ScreenLeads, navigation.ScreenPayments, "unknown"} {
		if !reflect.DeepEqual(r.VoiceScope(screen), r.SearchScope(screen)) {
			t.Fatalf("screen %q: voice and search scopes diverge", screen)
		}
	}
}

func TestUnrecognizedModeBehavesAsGlobal(t *testing.T) {
	r := NewResolver(Mode("fuzzy"))

	got := r.SearchScope(navigation.ScreenLeads)
	if !reflect.DeepEqual(got, engine.AllCategories()) {
		t.Fatalf("expected global fallback for unknown mode, got %v", got)
	}
}
