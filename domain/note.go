package domain

import "time"

// AINote is a generated summary of an apartment's state.
type AINote struct {
	ID          string    `json:"id"`
	ApartmentID string    `json:"apartment_id"`
	Timestamp   time.Time `json:"timestamp"`
	Summary     string    `json:"summary" validate:"required"`
	Highlights  []string  `json:"highlights,omitempty"`
}

func (n AINote) Clone() AINote {
	if n.Highlights != nil {
		n.Highlights = append([]string(nil), n.Highlights...)
	}
	return n
}

type AINotePatch struct {
	ApartmentID *string    `json:"apartment_id,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	Highlights  *[]string  `json:"highlights,omitempty"`
}

func (p AINotePatch) Apply(n *AINote) {
	if p.ApartmentID != nil {
		n.ApartmentID = *p.ApartmentID
	}
	if p.Timestamp != nil {
		n.Timestamp = *p.Timestamp
	}
	if p.Summary != nil {
		n.Summary = *p.Summary
	}
	if p.Highlights != nil {
		n.Highlights = append([]string(nil), (*p.Highlights)...)
	}
}

// ManualNote is the free-text note a team member keeps for an apartment; one per apartment.
type ManualNote struct {
	ApartmentID string    `json:"apartment_id"`
	Text        string    `json:"text"`
	UpdatedAt   time.Time `json:"updated_at"`
}
