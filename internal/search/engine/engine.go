package engine

import (
	"strings"

	"texportal_backend/platform/logger"
)

// Source supplies zero or more searchable items for one category, derived
// fresh from the live data snapshot at call time. Implementations must not
// retain or mutate the records they project.
type Source interface {
	Category() Category
	Items() []SearchableItem
}

// Engine matches queries against registered sources. It is a pure function
// over its inputs: same query, same scope, same data, same ordered output.
type Engine struct {
	sources map[Category]Source
	log     *logger.Logger
}

// New creates an engine over the given sources. Later sources for the same
// category replace earlier ones.
func New(log *logger.Logger, sources ...Source) *Engine {
	m := make(map[Category]Source, len(sources))
	for _, src := range sources {
		m[src.Category()] = src
	}
	return &Engine{sources: m, log: log}
}

// Search returns every item in scope whose searchable text or tags contain
// the query, case-insensitively. An empty or whitespace-only query yields
// no results: search is suppressed, not "match everything". The full match
// list is returned; capping to a display window is the caller's concern so
// the "N more" count stays computable.
//
// Results are grouped in fixed category priority order and keep the data
// source's insertion order within each category. A source that panics is
// skipped for its category; one bad source must not blank the whole result
// set.
func (e *Engine) Search(query string, scope Scope) []SearchableItem {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []SearchableItem{}
	}

	results := []SearchableItem{}
	for _, category := range categoryOrder {
		if !scope.Contains(category) {
			continue
		}
		src, ok := e.sources[category]
		if !ok {
			continue
		}
		for _, item := range e.safeItems(src) {
			if item.matches(needle) {
				results = append(results, item)
			}
		}
	}
	return results
}

// safeItems isolates a faulty source: a panic during projection is logged
// and the category contributes nothing to this pass.
func (e *Engine) safeItems(src Source) (items []SearchableItem) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			if e.log != nil {
				e.log.SourceFailure(string(src.Category()), r)
			}
		}
	}()
	return src.Items()
}
