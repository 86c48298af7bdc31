package service

import (
	"context"
	"fmt"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/events"
	"texportal_backend/internal/i18n"
	"texportal_backend/internal/navigation"
	searchservice "texportal_backend/internal/search/service"
	searchtransport "texportal_backend/internal/search/transport"
	"texportal_backend/internal/voice/classifier"
	"texportal_backend/internal/voice/transport"
	"texportal_backend/platform/logger"
	"texportal_backend/platform/phone"
)

// ContactDirectory resolves spoken names to dialable contacts.
type ContactDirectory interface {
	FindContact(name string) (domain.Contact, bool)
}

type Service struct {
	contacts   ContactDirectory
	search     *searchservice.Service
	dispatcher *navigation.Dispatcher
	bus        events.Bus
	log        *logger.Logger
}

func New(contacts ContactDirectory, search *searchservice.Service, dispatcher *navigation.Dispatcher,
	bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		contacts:   contacts,
		search:     search,
		dispatcher: dispatcher,
		bus:        bus,
		log:        log,
	}
}

// Execute classifies one utterance and performs the action it encodes.
// Every utterance resolves to at most one navigation or one search cycle;
// an unrecognized utterance degrades to a search over its raw text.
func (s *Service) Execute(ctx context.Context, sessionID string, req transport.CommandRequest) (*transport.CommandResponse, error) {
	lang := i18n.Language(req.Language)
	if !i18n.Supported(lang) {
		lang = i18n.LangEnglish
	}

	intent := classifier.Classify(req.Utterance, lang)
	kind := classifier.KindOf(intent)
	recognized := kind != classifier.KindUnrecognized

	s.log.VoiceCommand(string(lang), kind, recognized)
	s.bus.Publish(ctx, events.VoiceCommandClassified{
		BaseEvent:  events.NewBaseEvent(),
		Language:   string(lang),
		Intent:     kind,
		Recognized: recognized,
	})

	resp := &transport.CommandResponse{Intent: kind, Recognized: recognized}

	switch it := intent.(type) {
	case classifier.NavigateIntent:
		s.navigateTo(ctx, sessionID, resp, navigation.Target{
			Screen:       it.TargetScreen,
			StatusFilter: it.StatusFilter,
			Trigger:      "voice",
		})
		resp.Message = fmt.Sprintf(i18n.T(lang, i18n.KeyNavigating), it.TargetScreen)

	case classifier.SearchIntent:
		if err := s.runSearch(ctx, resp, it.Query, req.Screen); err != nil {
			return nil, err
		}
		resp.Message = fmt.Sprintf(i18n.T(lang, i18n.KeySearching), it.Query)

	case classifier.DomainActionIntent:
		s.domainAction(ctx, sessionID, lang, resp, it)

	case classifier.UnrecognizedIntent:
		if err := s.runSearch(ctx, resp, it.RawUtterance, req.Screen); err != nil {
			return nil, err
		}
		resp.Message = i18n.T(lang, i18n.KeyNotUnderstood)
	}

	return resp, nil
}

func (s *Service) navigateTo(ctx context.Context, sessionID string, resp *transport.CommandResponse, target navigation.Target) {
	s.dispatcher.Dispatch(ctx, sessionID, target)
	resp.Navigation = &transport.NavigationResult{
		Screen: target.Screen,
		Route:  navigation.Route(target.Screen),
	}
}

func (s *Service) runSearch(ctx context.Context, resp *transport.CommandResponse, query, screen string) error {
	result, err := s.search.Search(ctx, searchtransport.SearchRequest{Query: query, Screen: screen})
	if err != nil {
		return err
	}
	resp.Search = result
	return nil
}

func (s *Service) domainAction(ctx context.Context, sessionID string, lang i18n.Language,
	resp *transport.CommandResponse, it classifier.DomainActionIntent) {
	switch it.Action {
	case classifier.ActionCall, classifier.ActionMessage:
		contact, ok := s.contacts.FindContact(it.Argument)
		if !ok {
			resp.Message = fmt.Sprintf(i18n.T(lang, i18n.KeyContactNotFound), it.Argument)
			return
		}
		action := &transport.ContactAction{
			Name:  contact.Name,
			Phone: phone.NormalizeE164(contact.Phone),
			Kind:  contact.Kind,
		}
		if it.Action == classifier.ActionCall {
			action.URL = phone.DialURL(contact.Phone)
			resp.Message = fmt.Sprintf(i18n.T(lang, i18n.KeyCalling), contact.Name)
		} else {
			action.URL = phone.WhatsAppURL(contact.Phone, "")
			resp.Message = fmt.Sprintf(i18n.T(lang, i18n.KeyMessaging), contact.Name)
		}
		resp.Contact = action

	case classifier.ActionFilterLeads:
		s.navigateTo(ctx, sessionID, resp, navigation.Target{
			Screen:     navigation.ScreenLeads,
			LeadFilter: it.Argument,
			Trigger:    "voice",
		})
		resp.Message = i18n.T(lang, leadFilterKey(it.Argument))
	}
}

func leadFilterKey(priority string) i18n.Key {
	switch domain.Priority(priority) {
	case domain.PriorityWarm:
		return i18n.KeyShowingWarmLeads
	case domain.PriorityCold:
		return i18n.KeyShowingColdLeads
	default:
		return i18n.KeyShowingHotLeads
	}
}
