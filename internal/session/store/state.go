package store

import (
	"encoding/json"
	"time"

	"texportal_backend/internal/navigation"
)

// SchemaVersion is the current session blob layout. Bump it when the
// State shape changes and teach migrate about the old layout.
const SchemaVersion = 1

// State is the per-session UI state blob. The client renders whatever
// screen and filters the blob names, so every navigation side effect goes
// through here.
type State struct {
	SchemaVersion int    `json:"schemaVersion"`
	Mode          string `json:"mode"`
	CurrentScreen string `json:"currentScreen"`
	LeadFilter    string `json:"leadFilter,omitempty"`
	// StatusFilters maps a screen name to its active status filter.
	StatusFilters      map[string]string `json:"statusFilters,omitempty"`
	SelectedCustomerID string            `json:"selectedCustomerId,omitempty"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

func newState() State {
	return State{
		SchemaVersion: SchemaVersion,
		Mode:          "guest",
		CurrentScreen: navigation.ScreenDashboard,
		StatusFilters: map[string]string{},
	}
}

// decode parses a stored blob and migrates it to the current schema.
// Unversioned blobs predate the schemaVersion field and are treated as
// version zero.
func decode(raw []byte) (State, error) {
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, err
	}
	return migrate(st), nil
}

func migrate(st State) State {
	if st.SchemaVersion == 0 {
		if st.CurrentScreen == "" {
			st.CurrentScreen = navigation.ScreenDashboard
		}
		if st.Mode == "" {
			st.Mode = "guest"
		}
		st.SchemaVersion = SchemaVersion
	}
	if st.StatusFilters == nil {
		st.StatusFilters = map[string]string{}
	}
	return st
}
