package domain

import "time"

// Delivery tracks a vendor shipment to an apartment.
type Delivery struct {
	ID             string         `json:"id"`
	ApartmentID    string         `json:"apartment_id"`
	Vendor         string         `json:"vendor"`
	OrderReference string         `json:"order_reference"`
	ExpectedDate   time.Time      `json:"expected_date"`
	ActualDate     *time.Time     `json:"actual_date,omitempty"`
	Status         DeliveryStatus `json:"status" validate:"enum"`
	Notes          string         `json:"notes,omitempty"`
}

func (d Delivery) Clone() Delivery {
	d.ActualDate = cloneTime(d.ActualDate)
	return d
}

func (d *Delivery) ApplyDefaults() {
	if d.Status == "" {
		d.Status = DeliveryScheduled
	}
}

type DeliveryPatch struct {
	ApartmentID    *string         `json:"apartment_id,omitempty"`
	Vendor         *string         `json:"vendor,omitempty"`
	OrderReference *string         `json:"order_reference,omitempty"`
	ExpectedDate   *time.Time      `json:"expected_date,omitempty"`
	ActualDate     *time.Time      `json:"actual_date,omitempty"`
	Status         *DeliveryStatus `json:"status,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

func (p DeliveryPatch) Apply(d *Delivery) {
	if p.ApartmentID != nil {
		d.ApartmentID = *p.ApartmentID
	}
	if p.Vendor != nil {
		d.Vendor = *p.Vendor
	}
	if p.OrderReference != nil {
		d.OrderReference = *p.OrderReference
	}
	if p.ExpectedDate != nil {
		d.ExpectedDate = *p.ExpectedDate
	}
	if p.ActualDate != nil {
		d.ActualDate = cloneTime(p.ActualDate)
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
}
