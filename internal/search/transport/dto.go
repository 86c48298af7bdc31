package transport

import (
	"texportal_backend/internal/navigation"
	"texportal_backend/internal/search/engine"
)

// DisplayLimit is the number of results the client shows before the
// "N more" affordance. The API always returns the full match list; capping
// is purely a display concern.
const DisplayLimit = 4

type SearchRequest struct {
	Query  string `form:"q" validate:"omitempty,max=100"`
	Screen string `form:"screen" validate:"omitempty,max=50"`
}

type SearchResultItem struct {
	ID       string            `json:"id"`
	Category engine.Category   `json:"category"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Priority string            `json:"priority,omitempty"`
	Status   string            `json:"status,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Nav      navigation.Target `json:"nav"`
	Link     string            `json:"link"`
}

type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Total int                `json:"total"`
	// DisplayLimit echoes the suggested display cap to the client.
	DisplayLimit int `json:"displayLimit"`
}

// SelectRequest dispatches a previously returned result's navigation target.
type SelectRequest struct {
	Nav navigation.Target `json:"nav" validate:"required"`
}

// SelectResponse reports the applied transition.
type SelectResponse struct {
	Screen string `json:"screen"`
	Route  string `json:"route"`
}
