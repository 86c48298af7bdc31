package navigation

import "context"

// ScreenRecorder persists the currently visible screen for a session.
// Implemented by the session store.
type ScreenRecorder interface {
	SetCurrentScreen(ctx context.Context, sessionID, screen string) error
}

// SessionHandlers is the production Handlers implementation: every screen
// transition records the new screen on the caller's session. The client
// polls or receives the session state and renders the matching route.
type SessionHandlers struct {
	screens ScreenRecorder
}

// NewSessionHandlers creates the session-backed capability object.
func NewSessionHandlers(screens ScreenRecorder) *SessionHandlers {
	return &SessionHandlers{screens: screens}
}

func (s *SessionHandlers) show(ctx context.Context, sessionID, screen string) error {
	return s.screens.SetCurrentScreen(ctx, sessionID, screen)
}

func (s *SessionHandlers) ShowDashboard(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenDashboard)
}

func (s *SessionHandlers) ShowLeads(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenLeads)
}

func (s *SessionHandlers) ShowQuotes(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenQuotes)
}

func (s *SessionHandlers) ShowOrders(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenOrders)
}

func (s *SessionHandlers) ShowPayments(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenPayments)
}

func (s *SessionHandlers) ShowInvoices(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenInvoices)
}

func (s *SessionHandlers) ShowCustomers(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenCustomers)
}

func (s *SessionHandlers) ShowCustomerProfile(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenCustomerProfile)
}

func (s *SessionHandlers) ShowInventory(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenInventory)
}

func (s *SessionHandlers) ShowAnalytics(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenAnalytics)
}

func (s *SessionHandlers) ShowSettings(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenSettings)
}

func (s *SessionHandlers) ShowHome(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenHome)
}

func (s *SessionHandlers) ShowBlog(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenBlog)
}

func (s *SessionHandlers) ShowServices(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenServices)
}

func (s *SessionHandlers) ShowStories(ctx context.Context, sessionID string, _ Target) error {
	return s.show(ctx, sessionID, ScreenStories)
}

var _ Handlers = (*SessionHandlers)(nil)
