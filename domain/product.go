package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a line item ordered for an apartment.
type Product struct {
	ID               string               `json:"id"`
	ApartmentID      string               `json:"apartment_id"`
	Name             string               `json:"name" validate:"required"`
	Category         string               `json:"category,omitempty"`
	Room             string               `json:"room,omitempty"`
	Vendor           string               `json:"vendor"`
	SKU              string               `json:"sku"`
	UnitPrice        decimal.Decimal      `json:"unit_price" validate:"gte=0"`
	Qty              int                  `json:"qty" validate:"gte=0"`
	Availability     ProductAvailability  `json:"availability" validate:"enum"`
	Status           ProductStatus        `json:"status" validate:"enum"`
	PaymentStatus    ProductPaymentStatus `json:"payment_status" validate:"enum"`
	IssueState       ProductIssueState    `json:"issue_state" validate:"enum"`
	IssueID          string               `json:"issue_id,omitempty"`
	ExpectedDelivery *time.Time           `json:"expected_delivery,omitempty"`
}

func (p Product) Clone() Product {
	p.ExpectedDelivery = cloneTime(p.ExpectedDelivery)
	return p
}

// Total is UnitPrice multiplied by Qty.
func (p Product) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Qty)))
}

// ApplyDefaults fills the enum fields a new product may omit.
func (p *Product) ApplyDefaults() {
	if p.Availability == "" {
		p.Availability = AvailabilityInStock
	}
	if p.Status == "" {
		p.Status = ProductDesignApproved
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = ProductUnpaid
	}
	if p.IssueState == "" {
		p.IssueState = IssueStateNone
	}
}

type ProductPatch struct {
	ApartmentID      *string               `json:"apartment_id,omitempty"`
	Name             *string               `json:"name,omitempty"`
	Category         *string               `json:"category,omitempty"`
	Room             *string               `json:"room,omitempty"`
	Vendor           *string               `json:"vendor,omitempty"`
	SKU              *string               `json:"sku,omitempty"`
	UnitPrice        *decimal.Decimal      `json:"unit_price,omitempty"`
	Qty              *int                  `json:"qty,omitempty"`
	Availability     *ProductAvailability  `json:"availability,omitempty"`
	Status           *ProductStatus        `json:"status,omitempty"`
	PaymentStatus    *ProductPaymentStatus `json:"payment_status,omitempty"`
	IssueState       *ProductIssueState    `json:"issue_state,omitempty"`
	IssueID          *string               `json:"issue_id,omitempty"`
	ExpectedDelivery *time.Time            `json:"expected_delivery,omitempty"`
}

func (p ProductPatch) Apply(pr *Product) {
	if p.ApartmentID != nil {
		pr.ApartmentID = *p.ApartmentID
	}
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Category != nil {
		pr.Category = *p.Category
	}
	if p.Room != nil {
		pr.Room = *p.Room
	}
	if p.Vendor != nil {
		pr.Vendor = *p.Vendor
	}
	if p.SKU != nil {
		pr.SKU = *p.SKU
	}
	if p.UnitPrice != nil {
		pr.UnitPrice = *p.UnitPrice
	}
	if p.Qty != nil {
		pr.Qty = *p.Qty
	}
	if p.Availability != nil {
		pr.Availability = *p.Availability
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		pr.PaymentStatus = *p.PaymentStatus
	}
	if p.IssueState != nil {
		pr.IssueState = *p.IssueState
	}
	if p.IssueID != nil {
		pr.IssueID = *p.IssueID
	}
	if p.ExpectedDelivery != nil {
		pr.ExpectedDelivery = cloneTime(p.ExpectedDelivery)
	}
}
