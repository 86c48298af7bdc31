package service

import (
	"context"

	"texportal_backend/internal/events"
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
	"texportal_backend/internal/search/scope"
	"texportal_backend/internal/search/transport"
	"texportal_backend/platform/apperr"
	"texportal_backend/platform/logger"
)

type Service struct {
	engine     *engine.Engine
	scopes     *scope.Resolver
	dispatcher *navigation.Dispatcher
	bus        events.Bus
	log        *logger.Logger
}

func New(eng *engine.Engine, scopes *scope.Resolver, dispatcher *navigation.Dispatcher, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		engine:     eng,
		scopes:     scopes,
		dispatcher: dispatcher,
		bus:        bus,
		log:        log,
	}
}

// Search runs one query evaluation against the scope active for the
// caller's screen. Empty queries produce an empty result set, never an
// error.
func (s *Service) Search(ctx context.Context, req transport.SearchRequest) (*transport.SearchResponse, error) {
	activeScope := s.scopes.SearchScope(req.Screen)
	items := s.engine.Search(req.Query, activeScope)

	s.log.SearchPerformed(req.Query, req.Screen, len(activeScope), len(items))
	if len(items) > 0 {
		s.bus.Publish(ctx, events.SearchPerformed{
			BaseEvent: events.NewBaseEvent(),
			Query:     req.Query,
			Screen:    req.Screen,
			Results:   len(items),
		})
	}

	out := make([]transport.SearchResultItem, len(items))
	for i, item := range items {
		out[i] = transport.SearchResultItem{
			ID:       item.ID,
			Category: item.Category,
			Title:    item.Title,
			Subtitle: item.Subtitle,
			Priority: item.Priority,
			Status:   item.Status,
			Tags:     item.Tags,
			Nav:      item.Nav,
			Link:     item.Link,
		}
	}

	return &transport.SearchResponse{
		Items:        out,
		Total:        len(out),
		DisplayLimit: transport.DisplayLimit,
	}, nil
}

// Select dispatches a chosen result's navigation target for the session.
// Filter and selection state land before the screen transition, so the
// destination's first render already shows the right subset.
func (s *Service) Select(ctx context.Context, sessionID string, req transport.SelectRequest) (*transport.SelectResponse, error) {
	if !navigation.KnownScreen(req.Nav.Screen) {
		return nil, apperr.BadRequest("unknown screen").WithOp("search.Select").WithDetails(req.Nav.Screen)
	}

	target := req.Nav
	target.Trigger = "search_result"
	s.dispatcher.Dispatch(ctx, sessionID, target)

	return &transport.SelectResponse{
		Screen: target.Screen,
		Route:  navigation.Route(target.Screen),
	}, nil
}
