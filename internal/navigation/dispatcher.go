package navigation

import (
	"context"

	"texportal_backend/internal/events"
	"texportal_backend/platform/logger"
)

// Target describes one concrete screen transition plus the auxiliary state
// that must be applied before the destination screen renders, so the first
// render already shows the right subset.
type Target struct {
	Screen string `json:"screen"`
	// LeadFilter is a priority preset for the leads screen (hot/warm/cold).
	LeadFilter string `json:"leadFilter,omitempty"`
	// StatusFilter is a status preset for quotes/payments/invoices screens.
	StatusFilter string `json:"statusFilter,omitempty"`
	// CustomerID selects a customer for the profile screen.
	CustomerID string `json:"customerId,omitempty"`
	// ContentSlug selects a blog post or story.
	ContentSlug string `json:"contentSlug,omitempty"`
	// Trigger records what initiated the dispatch ("search_result", "voice", "direct").
	Trigger string `json:"-"`
}

// StateWriter applies the auxiliary session state a destination screen
// depends on. Implemented by the session store.
type StateWriter interface {
	SetLeadFilter(ctx context.Context, sessionID, filter string) error
	SetStatusFilter(ctx context.Context, sessionID, screen, status string) error
	SetSelectedCustomer(ctx context.Context, sessionID, customerID string) error
}

// HandlerFunc performs the actual screen transition for one screen.
type HandlerFunc func(ctx context.Context, sessionID string, target Target) error

// Handlers is the capability object the application shell supplies: one
// method per screen. Passing a single object instead of threading
// callbacks through every layer keeps a handler from going missing at an
// individual call site.
type Handlers interface {
	ShowDashboard(ctx context.Context, sessionID string, t Target) error
	ShowLeads(ctx context.Context, sessionID string, t Target) error
	ShowQuotes(ctx context.Context, sessionID string, t Target) error
	ShowOrders(ctx context.Context, sessionID string, t Target) error
	ShowPayments(ctx context.Context, sessionID string, t Target) error
	ShowInvoices(ctx context.Context, sessionID string, t Target) error
	ShowCustomers(ctx context.Context, sessionID string, t Target) error
	ShowCustomerProfile(ctx context.Context, sessionID string, t Target) error
	ShowInventory(ctx context.Context, sessionID string, t Target) error
	ShowAnalytics(ctx context.Context, sessionID string, t Target) error
	ShowSettings(ctx context.Context, sessionID string, t Target) error
	ShowHome(ctx context.Context, sessionID string, t Target) error
	ShowBlog(ctx context.Context, sessionID string, t Target) error
	ShowServices(ctx context.Context, sessionID string, t Target) error
	ShowStories(ctx context.Context, sessionID string, t Target) error
}

// Dispatcher translates targets into state mutations plus a screen
// transition. Auxiliary state is always applied before the handler runs:
// the destination screen's first render must already reflect the correct
// filter and selection.
type Dispatcher struct {
	state    StateWriter
	handlers map[string]HandlerFunc
	bus      events.Bus
	log      *logger.Logger
}

// NewDispatcher creates a dispatcher with an empty handler registry.
func NewDispatcher(state StateWriter, bus events.Bus, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		state:    state,
		handlers: make(map[string]HandlerFunc),
		bus:      bus,
		log:      log,
	}
}

// Register binds a screen name to its transition handler.
func (d *Dispatcher) Register(screen string, fn HandlerFunc) {
	d.handlers[screen] = fn
}

// RegisterAll wires every known screen to the corresponding method of the
// supplied capability object.
func (d *Dispatcher) RegisterAll(h Handlers) {
	d.Register(ScreenDashboard, h.ShowDashboard)
	d.Register(ScreenLeads, h.ShowLeads)
	d.Register(ScreenQuotes, h.ShowQuotes)
	d.Register(ScreenOrders, h.ShowOrders)
	d.Register(ScreenPayments, h.ShowPayments)
	d.Register(ScreenInvoices, h.ShowInvoices)
	d.Register(ScreenCustomers, h.ShowCustomers)
	d.Register(ScreenCustomerProfile, h.ShowCustomerProfile)
	d.Register(ScreenInventory, h.ShowInventory)
	d.Register(ScreenAnalytics, h.ShowAnalytics)
	d.Register(ScreenSettings, h.ShowSettings)
	d.Register(ScreenHome, h.ShowHome)
	d.Register(ScreenBlog, h.ShowBlog)
	d.Register(ScreenServices, h.ShowServices)
	d.Register(ScreenStories, h.ShowStories)
}

// Dispatch applies the target's auxiliary state, then performs the screen
// transition. A missing handler is a logged no-op, never a panic; there are
// no retries, the caller must re-issue the action. Dispatching the same
// target twice is safe: state writes are absolute, not incremental.
func (d *Dispatcher) Dispatch(ctx context.Context, sessionID string, target Target) {
	fn, ok := d.handlers[target.Screen]
	if !ok {
		d.log.DispatchSkipped(target.Screen, "no registered handler")
		return
	}

	// State first. The destination must never flash unfiltered content.
	if target.LeadFilter != "" {
		if err := d.state.SetLeadFilter(ctx, sessionID, target.LeadFilter); err != nil {
			d.log.DispatchSkipped(target.Screen, "lead filter write failed: "+err.Error())
			return
		}
	}
	if target.StatusFilter != "" {
		if err := d.state.SetStatusFilter(ctx, sessionID, target.Screen, target.StatusFilter); err != nil {
			d.log.DispatchSkipped(target.Screen, "status filter write failed: "+err.Error())
			return
		}
	}
	if target.CustomerID != "" {
		if err := d.state.SetSelectedCustomer(ctx, sessionID, target.CustomerID); err != nil {
			d.log.DispatchSkipped(target.Screen, "customer selection write failed: "+err.Error())
			return
		}
	}

	if err := fn(ctx, sessionID, target); err != nil {
		d.log.DispatchSkipped(target.Screen, "handler failed: "+err.Error())
		return
	}

	trigger := target.Trigger
	if trigger == "" {
		trigger = "direct"
	}
	d.bus.Publish(ctx, events.ScreenNavigated{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sessionID,
		Screen:    target.Screen,
		Trigger:   trigger,
	})
}
