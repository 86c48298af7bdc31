package engine

import (
	"fmt"
	"strings"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/navigation"
)

// Directory is the read-only snapshot boundary the search core consumes.
// Implemented by the directory store.
type Directory interface {
	Leads() []domain.Lead
	Quotes() []domain.Quote
	Orders() []domain.Order
	Customers() []domain.Customer
	Inventory() []domain.InventoryItem
	Analytics() []domain.AnalyticsFact
	Payments() []domain.Payment
	Invoices() []domain.Invoice
}

// DirectorySources builds one source per category over the directory.
func DirectorySources(dir Directory) []Source {
	return []Source{
		leadSource{dir},
		quoteSource{dir},
		orderSource{dir},
		paymentSource{dir},
		invoiceSource{dir},
		customerSource{dir},
		inventorySource{dir},
		analyticsSource{dir},
	}
}

type leadSource struct{ dir Directory }

func (s leadSource) Category() Category { return CategoryLead }

func (s leadSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, l := range s.dir.Leads() {
		// A lead without a name cannot produce a meaningful title.
		if l.CustomerName == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             l.ID,
			Category:       CategoryLead,
			Title:          joinTitle(l.CustomerName, l.Location),
			Subtitle:       fmt.Sprintf("%d m %s, %s", l.QuantityM, l.Material, l.Status),
			SearchableText: searchText(l.CustomerName, l.Location, l.Material, l.Status, string(l.Priority), l.Notes, l.ID),
			Tags:           l.Tags,
			Priority:       string(l.Priority),
			Status:         l.Status,
			Nav: navigation.Target{
				Screen:     navigation.ScreenLeads,
				LeadFilter: string(l.Priority),
			},
			Link: navigation.Route(navigation.ScreenLeads),
		})
	}
	return items
}

type quoteSource struct{ dir Directory }

func (s quoteSource) Category() Category { return CategoryQuote }

func (s quoteSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, q := range s.dir.Quotes() {
		if q.CustomerName == "" || q.Number == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             q.ID,
			Category:       CategoryQuote,
			Title:          joinTitle(q.Number, q.CustomerName),
			Subtitle:       fmt.Sprintf("%s, %s", FormatINR(q.AmountPaise), q.Status),
			SearchableText: searchText(q.Number, q.CustomerName, q.Location, q.Material, q.Status, q.ID),
			Tags:           q.Tags,
			Status:         q.Status,
			Nav: navigation.Target{
				Screen:       navigation.ScreenQuotes,
				StatusFilter: q.Status,
			},
			Link: navigation.Route(navigation.ScreenQuotes),
		})
	}
	return items
}

type orderSource struct{ dir Directory }

func (s orderSource) Category() Category { return CategoryOrder }

func (s orderSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, o := range s.dir.Orders() {
		if o.CustomerName == "" || o.Number == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             o.ID,
			Category:       CategoryOrder,
			Title:          joinTitle(o.Number, o.CustomerName),
			Subtitle:       fmt.Sprintf("%d m %s, %s", o.QuantityM, o.Material, o.Status),
			SearchableText: searchText(o.Number, o.CustomerName, o.Material, o.Status, o.ID),
			Tags:           o.Tags,
			Status:         o.Status,
			Nav: navigation.Target{
				Screen:       navigation.ScreenOrders,
				StatusFilter: o.Status,
			},
			Link: navigation.Route(navigation.ScreenOrders),
		})
	}
	return items
}

type paymentSource struct{ dir Directory }

func (s paymentSource) Category() Category { return CategoryPayment }

func (s paymentSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, p := range s.dir.Payments() {
		if p.CustomerName == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             p.ID,
			Category:       CategoryPayment,
			Title:          joinTitle(p.CustomerName, FormatINR(p.AmountPaise)),
			Subtitle:       fmt.Sprintf("%s, %s", p.Mode, p.Status),
			SearchableText: searchText(p.CustomerName, p.Mode, p.Status, p.Reference, p.ID),
			Tags:           p.Tags,
			Status:         p.Status,
			Nav: navigation.Target{
				Screen:       navigation.ScreenPayments,
				StatusFilter: p.Status,
			},
			Link: navigation.Route(navigation.ScreenPayments),
		})
	}
	return items
}

type invoiceSource struct{ dir Directory }

func (s invoiceSource) Category() Category { return CategoryInvoice }

func (s invoiceSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, inv := range s.dir.Invoices() {
		if inv.CustomerName == "" || inv.Number == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             inv.ID,
			Category:       CategoryInvoice,
			Title:          joinTitle(inv.Number, inv.CustomerName),
			Subtitle:       fmt.Sprintf("%s, %s", FormatINR(inv.AmountPaise), inv.Status),
			SearchableText: searchText(inv.Number, inv.CustomerName, inv.Status, inv.ID),
			Tags:           inv.Tags,
			Status:         inv.Status,
			Nav: navigation.Target{
				Screen:       navigation.ScreenInvoices,
				StatusFilter: inv.Status,
			},
			Link: navigation.Route(navigation.ScreenInvoices),
		})
	}
	return items
}

type customerSource struct{ dir Directory }

func (s customerSource) Category() Category { return CategoryCustomer }

func (s customerSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, c := range s.dir.Customers() {
		if c.Name == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             c.ID,
			Category:       CategoryCustomer,
			Title:          joinTitle(c.Name, c.Location),
			Subtitle:       fmt.Sprintf("total %s, outstanding %s", FormatINR(c.TotalPaise), FormatINR(c.OutstandingPaise)),
			SearchableText: searchText(c.Name, c.Location, c.Email, c.Phone, c.ID),
			Tags:           c.Tags,
			Nav: navigation.Target{
				Screen:     navigation.ScreenCustomerProfile,
				CustomerID: c.ID,
			},
			Link: navigation.Route(navigation.ScreenCustomerProfile),
		})
	}
	return items
}

type inventorySource struct{ dir Directory }

func (s inventorySource) Category() Category { return CategoryInventoryItem }

func (s inventorySource) Items() []SearchableItem {
	var items []SearchableItem
	for _, it := range s.dir.Inventory() {
		if it.Name == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             it.ID,
			Category:       CategoryInventoryItem,
			Title:          joinTitle(it.Name, it.Godown),
			Subtitle:       fmt.Sprintf("%d m in stock, %s/m", it.StockM, FormatINR(it.PricePaisePerM)),
			SearchableText: searchText(it.Name, it.Material, it.Quality, it.Godown, it.ID),
			Tags:           append(append([]string(nil), it.Tags...), it.Material),
			Nav: navigation.Target{
				Screen: navigation.ScreenInventory,
			},
			Link: navigation.Route(navigation.ScreenInventory),
		})
	}
	return items
}

type analyticsSource struct{ dir Directory }

func (s analyticsSource) Category() Category { return CategoryAnalyticsFact }

func (s analyticsSource) Items() []SearchableItem {
	var items []SearchableItem
	for _, f := range s.dir.Analytics() {
		if f.Metric == "" {
			continue
		}
		items = append(items, SearchableItem{
			ID:             f.ID,
			Category:       CategoryAnalyticsFact,
			Title:          joinTitle(f.Metric, f.Period),
			Subtitle:       f.Value,
			SearchableText: searchText(f.Metric, f.Value, f.Period, f.ID),
			Tags:           f.Tags,
			Nav: navigation.Target{
				Screen: navigation.ScreenAnalytics,
			},
			Link: navigation.Route(navigation.ScreenAnalytics),
		})
	}
	return items
}

func joinTitle(primary, secondary string) string {
	if secondary == "" {
		return primary
	}
	return primary + ", " + secondary
}

func searchText(fields ...string) string {
	parts := fields[:0:0]
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// FormatINR renders a paise amount in rupees with Indian digit grouping,
// e.g. 96000000 paise renders as "₹9,60,000".
func FormatINR(paise int64) string {
	negative := paise < 0
	if negative {
		paise = -paise
	}
	rupees := paise / 100

	digits := fmt.Sprintf("%d", rupees)
	var grouped string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		tail := digits[len(digits)-3:]
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		grouped = head + grouped + "," + tail
	} else {
		grouped = digits
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
