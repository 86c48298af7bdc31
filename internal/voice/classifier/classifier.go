// Package classifier turns a transcribed voice utterance into a typed
// intent. Classification is deliberately keyword based: a small ordered
// rule list per language, matched against the lowercased utterance,
// first match wins. No scoring, no fuzzy matching, no ML.
package classifier

import (
	"strings"

	"texportal_backend/internal/i18n"
)

// Intent is the classified meaning of one utterance. Exactly one of the
// concrete types below is produced per call.
type Intent interface {
	isIntent()
}

// NavigateIntent opens a screen, optionally with a status filter preset.
type NavigateIntent struct {
	TargetScreen string
	StatusFilter string
}

// SearchIntent runs a free-text search for the extracted term.
type SearchIntent struct {
	Query string
}

// DomainAction names a side-effecting business action.
type DomainAction string

const (
	ActionCall        DomainAction = "call"
	ActionMessage     DomainAction = "message"
	ActionFilterLeads DomainAction = "filter_leads"
)

// DomainActionIntent invokes a domain action with one argument (a contact
// name for call/message, a priority for filter_leads).
type DomainActionIntent struct {
	Action   DomainAction
	Argument string
}

// UnrecognizedIntent carries the raw utterance when no rule matched. The
// executor degrades it to a search instead of dropping the command.
type UnrecognizedIntent struct {
	RawUtterance string
}

func (NavigateIntent) isIntent()     {}
func (SearchIntent) isIntent()       {}
func (DomainActionIntent) isIntent() {}
func (UnrecognizedIntent) isIntent() {}

// Intent kind names used in logs and transport payloads.
const (
	KindNavigate     = "navigate"
	KindSearch       = "search"
	KindDomainAction = "domain_action"
	KindUnrecognized = "unrecognized"
)

// KindOf names an intent variant for logging and transport.
func KindOf(intent Intent) string {
	switch intent.(type) {
	case NavigateIntent:
		return KindNavigate
	case SearchIntent:
		return KindSearch
	case DomainActionIntent:
		return KindDomainAction
	default:
		return KindUnrecognized
	}
}

// rule is one entry in a language's ordered rule list.
type rule struct {
	name  string
	match func(utterance string) (Intent, bool)
}

// Classify resolves an utterance against the rule list for the language.
// Rules are tried strictly in list order: overlapping trigger phrases are
// prioritized by position, which is the product behavior, not an accident.
// An unsupported language falls back to the English rules.
func Classify(utterance string, lang i18n.Language) Intent {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if normalized == "" {
		return UnrecognizedIntent{RawUtterance: utterance}
	}

	rules, ok := rulesByLanguage[lang]
	if !ok {
		rules = rulesByLanguage[i18n.LangEnglish]
	}

	for _, r := range rules {
		if intent, matched := r.match(normalized); matched {
			return intent
		}
	}
	return UnrecognizedIntent{RawUtterance: strings.TrimSpace(utterance)}
}
