package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEntry is one posting against a payment.
type PaymentEntry struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Method    string          `json:"method" validate:"required"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// Payment tracks what is owed to a vendor for an order and what has been paid so far.
// AmountPaid, LastPaymentDate and Status are derived from PaymentHistory.
type Payment struct {
	ID              string          `json:"id"`
	ApartmentID     string          `json:"apartment_id"`
	Vendor          string          `json:"vendor"`
	OrderReference  string          `json:"order_reference"`
	TotalAmount     decimal.Decimal `json:"total_amount" validate:"gte=0"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Status          PaymentStatus   `json:"status" validate:"enum"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	LastPaymentDate *time.Time      `json:"last_payment_date,omitempty"`
	PaymentHistory  []PaymentEntry  `json:"payment_history" validate:"dive"`
}

func (p Payment) Clone() Payment {
	p.DueDate = cloneTime(p.DueDate)
	p.LastPaymentDate = cloneTime(p.LastPaymentDate)
	if p.PaymentHistory != nil {
		p.PaymentHistory = append([]PaymentEntry(nil), p.PaymentHistory...)
	}
	return p
}

// Outstanding is the amount still owed, never negative.
func (p Payment) Outstanding() decimal.Decimal {
	rest := p.TotalAmount.Sub(p.AmountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// Post appends an entry and settles the derived fields in one step.
func (p *Payment) Post(entry PaymentEntry) {
	p.PaymentHistory = append(p.PaymentHistory, entry)
	p.AmountPaid = p.AmountPaid.Add(entry.Amount)
	date := entry.Date
	p.LastPaymentDate = &date
	p.settle()
}

// Reconcile recomputes AmountPaid, LastPaymentDate and Status from PaymentHistory.
// A payment without history may only be Unpaid or Overdue. Overdue also survives
// while the history does not cover TotalAmount.
func (p *Payment) Reconcile() {
	paid := decimal.Zero
	for _, entry := range p.PaymentHistory {
		paid = paid.Add(entry.Amount)
	}
	p.AmountPaid = paid

	if n := len(p.PaymentHistory); n > 0 {
		date := p.PaymentHistory[n-1].Date
		p.LastPaymentDate = &date
		if p.Status == PaymentOverdue && p.AmountPaid.LessThan(p.TotalAmount) {
			return
		}
		p.settle()
		return
	}

	p.LastPaymentDate = nil
	if p.Status != PaymentOverdue {
		p.Status = PaymentUnpaid
	}
}

func (p *Payment) settle() {
	if p.AmountPaid.GreaterThanOrEqual(p.TotalAmount) {
		p.Status = PaymentPaid
		return
	}
	p.Status = PaymentPartial
}

type PaymentPatch struct {
	ApartmentID    *string          `json:"apartment_id,omitempty"`
	Vendor         *string          `json:"vendor,omitempty"`
	OrderReference *string          `json:"order_reference,omitempty"`
	TotalAmount    *decimal.Decimal `json:"total_amount,omitempty"`
	Status         *PaymentStatus   `json:"status,omitempty"`
	DueDate        *time.Time       `json:"due_date,omitempty"`
	PaymentHistory *[]PaymentEntry  `json:"payment_history,omitempty"`
}

func (p PaymentPatch) Apply(pay *Payment) {
	if p.ApartmentID != nil {
		pay.ApartmentID = *p.ApartmentID
	}
	if p.Vendor != nil {
		pay.Vendor = *p.Vendor
	}
	if p.OrderReference != nil {
		pay.OrderReference = *p.OrderReference
	}
	if p.TotalAmount != nil {
		pay.TotalAmount = *p.TotalAmount
	}
	if p.Status != nil {
		pay.Status = *p.Status
	}
	if p.DueDate != nil {
		pay.DueDate = cloneTime(p.DueDate)
	}
	if p.PaymentHistory != nil {
		pay.PaymentHistory = append([]PaymentEntry(nil), (*p.PaymentHistory)...)
	}
	pay.Reconcile()
}
