// Package scope decides which business categories a search or voice
// operation may touch on a given screen.
package scope

import (
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
)

// Mode selects between searching everything everywhere and restricting
// search to what the current screen shows.
type Mode string

const (
	// ModeGlobal searches the full category set regardless of screen.
	ModeGlobal Mode = "global"
	// ModeComponent restricts search to the current screen's categories.
	ModeComponent Mode = "component"
)

// screenCategories is the static screen to category-subset table used in
// component mode. Screens absent from the table fall back to the full set;
// an unmapped screen is a defined fallback, not an error.
var screenCategories = map[string]engine.Scope{
	navigation.ScreenLeads:           {engine.CategoryLead},
	navigation.ScreenQuotes:          {engine.CategoryQuote},
	navigation.ScreenOrders:          {engine.CategoryOrder},
	navigation.ScreenPayments:        {engine.CategoryPayment, engine.CategoryInvoice},
	navigation.ScreenInvoices:        {engine.CategoryInvoice, engine.CategoryPayment},
	navigation.ScreenCustomers:       {engine.CategoryCustomer, engine.CategoryLead},
	navigation.ScreenCustomerProfile: {engine.CategoryCustomer, engine.CategoryOrder, engine.CategoryPayment, engine.CategoryInvoice},
	navigation.ScreenInventory:       {engine.CategoryInventoryItem},
	navigation.ScreenAnalytics:       {engine.CategoryAnalyticsFact},
}

// Resolver computes the active scope for searches and voice commands.
// It is pure: no side effects, no error conditions.
type Resolver struct {
	mode Mode
}

// NewResolver creates a resolver for the given mode. An unrecognized mode
// behaves as global, the permissive default.
func NewResolver(mode Mode) *Resolver {
	if mode != ModeComponent {
		mode = ModeGlobal
	}
	return &Resolver{mode: mode}
}

// SearchScope returns the categories eligible for text search on a screen.
func (r *Resolver) SearchScope(currentScreen string) engine.Scope {
	return r.resolve(currentScreen)
}

// VoiceScope returns the categories eligible for voice search on a screen.
// Voice uses the same table as text search.
func (r *Resolver) VoiceScope(currentScreen string) engine.Scope {
	return r.resolve(currentScreen)
}

func (r *Resolver) resolve(currentScreen string) engine.Scope {
	if r.mode == ModeGlobal {
		return engine.AllCategories()
	}
	if categories, ok := screenCategories[currentScreen]; ok {
		return append(engine.Scope(nil), categories...)
	}
	return engine.AllCategories()
}
