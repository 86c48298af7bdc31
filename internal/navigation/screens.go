// Package navigation maps chosen search results and classified voice
// intents onto concrete screen transitions plus the auxiliary session
// state the destination screen needs for its first render.
package navigation

// Screen names. These are the stable identifiers the client routing layer
// and the voice/search core agree on.
const (
	ScreenDashboard       = "dashboard"
	ScreenLeads           = "leads"
	ScreenQuotes          = "quotes"
	ScreenOrders          = "orders"
	ScreenPayments        = "payments"
	ScreenInvoices        = "invoices"
	ScreenCustomers       = "customers"
	ScreenCustomerProfile = "customer-profile"
	ScreenInventory       = "inventory"
	ScreenAnalytics       = "analytics"
	ScreenSettings        = "settings"
	ScreenHome            = "home"
	ScreenBlog            = "blog"
	ScreenServices        = "services"
	ScreenStories         = "stories"
)

// routes maps screen names to client-side paths.
var routes = map[string]string{
	ScreenDashboard:       "/app",
	ScreenLeads:           "/app/leads",
	ScreenQuotes:          "/app/quotes",
	ScreenOrders:          "/app/orders",
	ScreenPayments:        "/app/payments",
	ScreenInvoices:        "/app/invoices",
	ScreenCustomers:       "/app/customers",
	ScreenCustomerProfile: "/app/customers/profile",
	ScreenInventory:       "/app/inventory",
	ScreenAnalytics:       "/app/analytics",
	ScreenSettings:        "/app/settings",
	ScreenHome:            "/",
	ScreenBlog:            "/blog",
	ScreenServices:        "/services",
	ScreenStories:         "/stories",
}

// Route returns the client path for a screen, or "/app" for unknown screens.
func Route(screen string) string {
	if r, ok := routes[screen]; ok {
		return r
	}
	return "/app"
}

// KnownScreen reports whether the screen name is part of the routing table.
func KnownScreen(screen string) bool {
	_, ok := routes[screen]
	return ok
}

// Screens returns all known screen names.
func Screens() []string {
	names := make([]string, 0, len(routes))
	for name := range routes {
		names = append(names, name)
	}
	return names
}
