package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentPostSettles(t *testing.T) {
	p := Payment{TotalAmount: decimal.NewFromInt(100), Status: PaymentUnpaid}
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	p.Post(PaymentEntry{Date: day, Amount: decimal.NewFromInt(30), Method: "Card"})
	assert.Equal(t, PaymentPartial, p.Status)
	assert.True(t, decimal.NewFromInt(70).Equal(p.Outstanding()))

	p.Post(PaymentEntry{Date: day.AddDate(0, 0, 1), Amount: decimal.NewFromInt(80), Method: "Card"})
	assert.Equal(t, PaymentPaid, p.Status)
	assert.True(t, p.Outstanding().IsZero())
	assert.Equal(t, day.AddDate(0, 0, 1), *p.LastPaymentDate)
}

func TestPaymentReconcile(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		payment Payment
		paid    int64
		status  PaymentStatus
	}{
		{
			name:    "no history resets to unpaid",
			payment: Payment{TotalAmount: decimal.NewFromInt(10), AmountPaid: decimal.NewFromInt(10), Status: PaymentPaid},
			paid:    0,
			status:  PaymentUnpaid,
		},
		{
			name:    "no history keeps overdue",
			payment: Payment{TotalAmount: decimal.NewFromInt(10), Status: PaymentOverdue},
			paid:    0,
			status:  PaymentOverdue,
		},
		{
			name: "history below total",
			payment: Payment{TotalAmount: decimal.NewFromInt(10), PaymentHistory: []PaymentEntry{
				{Date: day, Amount: decimal.NewFromInt(4), Method: "Card"},
			}},
			paid:   4,
			status: PaymentPartial,
		},
		{
			name: "overdue kept below total",
			payment: Payment{TotalAmount: decimal.NewFromInt(10), Status: PaymentOverdue, PaymentHistory: []PaymentEntry{
				{Date: day, Amount: decimal.NewFromInt(4), Method: "Card"},
			}},
			paid:   4,
			status: PaymentOverdue,
		},
		{
			name: "history covers total",
			payment: Payment{TotalAmount: decimal.NewFromInt(10), Status: PaymentOverdue, PaymentHistory: []PaymentEntry{
				{Date: day, Amount: decimal.NewFromInt(4), Method: "Card"},
				{Date: day, Amount: decimal.NewFromInt(6), Method: "Card"},
			}},
			paid:   10,
			status: PaymentPaid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payment
			p.Reconcile()
			assert.True(t, decimal.NewFromInt(tt.paid).Equal(p.AmountPaid), p.AmountPaid.String())
			assert.Equal(t, tt.status, p.Status)
		})
	}
}

func TestPaymentCloneIsDeep(t *testing.T) {
	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	p := Payment{DueDate: &due, PaymentHistory: []PaymentEntry{{ID: "a", Amount: decimal.NewFromInt(1)}}}

	c := p.Clone()
	c.PaymentHistory[0].ID = "b"
	*c.DueDate = due.AddDate(1, 0, 0)

	assert.Equal(t, "a", p.PaymentHistory[0].ID)
	assert.Equal(t, due, *p.DueDate)
}

func TestValidateNamesFields(t *testing.T) {
	err := Validate(Apartment{Name: "", Type: "castle", Status: ApartmentPlanning, Progress: 101})
	require.Error(t, err)
	assert.True(t, IsDomainError(err, ErrCodeInvalid))
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), `type has unknown value "castle"`)
	assert.Contains(t, err.Error(), "progress must be at most 100")

	assert.NoError(t, Validate(Apartment{Name: "Loft", Type: ApartmentFurnishing, Status: ApartmentPlanning, Budget: decimal.NewFromInt(10)}))

	err = Validate(Product{Name: "Chair", UnitPrice: decimal.NewFromInt(-1),
		Availability: AvailabilityInStock, Status: ProductOrdered, PaymentStatus: ProductUnpaid, IssueState: IssueStateNone})
	assert.True(t, IsDomainError(err, ErrCodeInvalid))
	assert.Contains(t, err.Error(), "unit_price")
}

func TestDecodeSnapshot(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"version":2}`))
	assert.ErrorIs(t, err, ErrUnsupportedSnapshot)

	_, err = DecodeSnapshot([]byte(`[`))
	assert.True(t, IsDomainError(err, ErrCodeInvalid))

	snap, err := DecodeSnapshot([]byte(`{"clients":[{"id":"client-1","name":"A"}]}`))
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, 1, snap.Counts()["clients"])
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, ApartmentStatus("Design Approved").Valid())
	assert.False(t, ApartmentStatus("design approved").Valid())
	assert.True(t, DeliveryStatus("In Transit").Valid())
	assert.True(t, ActivityType("comment").Valid())
	assert.False(t, PaymentStatus("").Valid())
	assert.True(t, MessageSender("team").Valid())
}
