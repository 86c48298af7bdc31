// Package engine implements the in-memory search core: normalized,
// navigable projections of business records matched by case-insensitive
// substring against their searchable text and tags.
package engine

import (
	"strings"

	"texportal_backend/internal/navigation"
)

// Category identifies which business collection an item came from.
type Category string

const (
	CategoryLead          Category = "lead"
	CategoryQuote         Category = "quote"
	CategoryOrder         Category = "order"
	CategoryPayment       Category = "payment"
	CategoryInvoice       Category = "invoice"
	CategoryCustomer      Category = "customer"
	CategoryInventoryItem Category = "inventory_item"
	CategoryAnalyticsFact Category = "analytics_fact"
)

// categoryOrder fixes the stable grouping of results. Leads come first:
// for a sales-led business the freshest prospect is the likeliest target.
var categoryOrder = []Category{
	CategoryLead,
	CategoryQuote,
	CategoryOrder,
	CategoryPayment,
	CategoryInvoice,
	CategoryCustomer,
	CategoryInventoryItem,
	CategoryAnalyticsFact,
}

// Scope is the ordered set of categories eligible for one query evaluation.
// It is never mutated once built.
type Scope []Category

// Contains reports whether the scope includes the category.
func (s Scope) Contains(c Category) bool {
	for _, sc := range s {
		if sc == c {
			return true
		}
	}
	return false
}

// AllCategories returns the full fixed category set in priority order.
func AllCategories() Scope {
	return append(Scope(nil), categoryOrder...)
}

// SearchableItem is the normalized projection of one business record used
// for matching and display. Choosing an item dispatches its Nav target;
// dispatch is idempotent, so selecting the same result twice is safe.
type SearchableItem struct {
	ID             string            `json:"id"`
	Category       Category          `json:"category"`
	Title          string            `json:"title"`
	Subtitle       string            `json:"subtitle"`
	SearchableText string            `json:"-"`
	Tags           []string          `json:"tags,omitempty"`
	Priority       string            `json:"priority,omitempty"`
	Status         string            `json:"status,omitempty"`
	Nav            navigation.Target `json:"nav"`
	Link           string            `json:"link"`
}

// matches reports whether the lowercased needle appears in the item's
// searchable text or in any individual tag.
func (it SearchableItem) matches(needle string) bool {
	if strings.Contains(strings.ToLower(it.SearchableText), needle) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
