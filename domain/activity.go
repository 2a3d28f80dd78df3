package domain

import "time"

// Activity is an entry of an apartment's audit trail.
type Activity struct {
	ID          string       `json:"id"`
	ApartmentID string       `json:"apartment_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Actor       string       `json:"actor" validate:"required"`
	Summary     string       `json:"summary" validate:"required"`
	Type        ActivityType `json:"type" validate:"enum"`
}

func (a Activity) Clone() Activity {
	return a
}

type ActivityPatch struct {
	ApartmentID *string       `json:"apartment_id,omitempty"`
	Timestamp   *time.Time    `json:"timestamp,omitempty"`
	Actor       *string       `json:"actor,omitempty"`
	Summary     *string       `json:"summary,omitempty"`
	Type        *ActivityType `json:"type,omitempty"`
}

func (p ActivityPatch) Apply(a *Activity) {
	if p.ApartmentID != nil {
		a.ApartmentID = *p.ApartmentID
	}
	if p.Timestamp != nil {
		a.Timestamp = *p.Timestamp
	}
	if p.Actor != nil {
		a.Actor = *p.Actor
	}
	if p.Summary != nil {
		a.Summary = *p.Summary
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
}
