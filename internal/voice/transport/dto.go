package transport

import (
	searchtransport "texportal_backend/internal/search/transport"
)

// CommandRequest carries one transcribed utterance. Transcription happens
// on the client; the server only classifies and acts.
type CommandRequest struct {
	Utterance string `json:"utterance" validate:"required,max=200"`
	Language  string `json:"language" validate:"omitempty,oneof=en gu hi"`
	Screen    string `json:"screen" validate:"omitempty,max=50"`
}

// NavigationResult describes the screen transition a command produced.
type NavigationResult struct {
	Screen string `json:"screen"`
	Route  string `json:"route"`
}

// ContactAction describes a resolved call or message action. URL is a
// tel: or wa.me link the client can open directly.
type ContactAction struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Kind  string `json:"kind"`
	URL   string `json:"url"`
}

// CommandResponse reports the classified intent and the single action it
// produced. Exactly one of Navigation, Contact and Search is set; none is
// set when a contact lookup fails.
type CommandResponse struct {
	Intent     string                          `json:"intent"`
	Recognized bool                            `json:"recognized"`
	Message    string                          `json:"message"`
	Navigation *NavigationResult               `json:"navigation,omitempty"`
	Contact    *ContactAction                  `json:"contact,omitempty"`
	Search     *searchtransport.SearchResponse `json:"search,omitempty"`
}
