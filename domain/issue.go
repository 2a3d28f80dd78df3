package domain

import "time"

// CommunicationEntry is one message of the vendor conversation attached to an issue.
type CommunicationEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Sender    MessageSender `json:"sender" validate:"enum"`
	Message   string        `json:"message" validate:"required"`
}

// Issue is a problem reported against a product and followed up with its vendor.
type Issue struct {
	ID                 string               `json:"id"`
	ApartmentID        string               `json:"apartment_id"`
	ProductID          string               `json:"product_id"`
	Vendor             string               `json:"vendor"`
	Type               string               `json:"type" validate:"required"`
	Description        string               `json:"description"`
	Status             IssueStatus          `json:"status" validate:"enum"`
	Priority           Priority             `json:"priority" validate:"enum"`
	ReportedOn         time.Time            `json:"reported_on"`
	AICommunicationLog []CommunicationEntry `json:"ai_communication_log" validate:"dive"`
}

func (i Issue) Clone() Issue {
	if i.AICommunicationLog != nil {
		i.AICommunicationLog = append([]CommunicationEntry(nil), i.AICommunicationLog...)
	}
	return i
}

func (i *Issue) ApplyDefaults() {
	if i.Status == "" {
		i.Status = IssueOpen
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
}

func (i *Issue) IsResolved() bool {
	return i != nil && i.Status == IssueResolved
}

type IssuePatch struct {
	ApartmentID *string      `json:"apartment_id,omitempty"`
	ProductID   *string      `json:"product_id,omitempty"`
	Vendor      *string      `json:"vendor,omitempty"`
	Type        *string      `json:"type,omitempty"`
	Description *string      `json:"description,omitempty"`
	Status      *IssueStatus `json:"status,omitempty"`
	Priority    *Priority    `json:"priority,omitempty"`
}

func (p IssuePatch) Apply(i *Issue) {
	if p.ApartmentID != nil {
		i.ApartmentID = *p.ApartmentID
	}
	if p.ProductID != nil {
		i.ProductID = *p.ProductID
	}
	if p.Vendor != nil {
		i.Vendor = *p.Vendor
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
}
