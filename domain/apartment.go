package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Apartment is the unit of work every product, delivery, payment and issue belongs to.
type Apartment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Address   string          `json:"address,omitempty"`
	Type      ApartmentType   `json:"type" validate:"enum"`
	ClientID  string          `json:"client_id"`
	Status    ApartmentStatus `json:"status" validate:"enum"`
	Progress  int             `json:"progress" validate:"gte=0,lte=100"`
	Budget    decimal.Decimal `json:"budget" validate:"gte=0"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	DueDate   *time.Time      `json:"due_date,omitempty"`
}

func (a Apartment) Clone() Apartment {
	a.StartDate = cloneTime(a.StartDate)
	a.DueDate = cloneTime(a.DueDate)
	return a
}

func (a *Apartment) IsCompleted() bool {
	return a != nil && a.Status == ApartmentCompleted
}

type ApartmentPatch struct {
	Name      *string          `json:"name,omitempty"`
	Address   *string          `json:"address,omitempty"`
	Type      *ApartmentType   `json:"type,omitempty"`
	ClientID  *string          `json:"client_id,omitempty"`
	Status    *ApartmentStatus `json:"status,omitempty"`
	Progress  *int             `json:"progress,omitempty"`
	Budget    *decimal.Decimal `json:"budget,omitempty"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	DueDate   *time.Time       `json:"due_date,omitempty"`
}

func (p ApartmentPatch) Apply(a *Apartment) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Progress != nil {
		a.Progress = *p.Progress
	}
	if p.Budget != nil {
		a.Budget = *p.Budget
	}
	if p.StartDate != nil {
		a.StartDate = cloneTime(p.StartDate)
	}
	if p.DueDate != nil {
		a.DueDate = cloneTime(p.DueDate)
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
