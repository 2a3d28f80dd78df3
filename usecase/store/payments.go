package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/fastygo/furnish/domain"
)

// AddPayment stores a new payment. AmountPaid, LastPaymentDate and Status are
// derived from the supplied history rather than taken from the caller.
func (s *Store) AddPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	payment = payment.Clone()
	if payment.Status == "" {
		payment.Status = domain.PaymentUnpaid
	}
	for i := range payment.PaymentHistory {
		if payment.PaymentHistory[i].ID == "" {
			payment.PaymentHistory[i].ID = uuid.NewString()
		}
	}
	payment.Reconcile()
	return add(ctx, s, &s.payments, payment, func(p *domain.Payment, id string) { p.ID = id })
}

// UpdatePayment merges patch and recomputes the derived fields, so a new TotalAmount
// or history can never leave Status and AmountPaid out of step.
func (s *Store) UpdatePayment(ctx context.Context, id string, patch domain.PaymentPatch) (domain.Payment, bool, error) {
	return update(ctx, s, &s.payments, id, patch)
}

func (s *Store) DeletePayment(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.payments, id)
}

func (s *Store) GetPayment(id string) (domain.Payment, bool) {
	return get(s, &s.payments, id)
}

func (s *Store) ListPayments() []domain.Payment {
	return list(s, &s.payments)
}

func (s *Store) PaymentsByApartment(apartmentID string) []domain.Payment {
	return filter(s, &s.payments, func(p domain.Payment) bool {
		return p.ApartmentID == apartmentID
	})
}

func (s *Store) PaymentsByVendor(vendor string) []domain.Payment {
	return filter(s, &s.payments, func(p domain.Payment) bool {
		return strings.EqualFold(p.Vendor, vendor)
	})
}

// AddPaymentToHistory posts entry against the payment: the entry is appended,
// AmountPaid grows by its amount, LastPaymentDate becomes its date and Status turns
// Paid once AmountPaid reaches TotalAmount, Partial before that. All of it is one
// state transition. A missing payment is a no-op reported through the boolean.
func (s *Store) AddPaymentToHistory(ctx context.Context, id string, entry domain.PaymentEntry) (domain.Payment, bool, error) {
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	s.mu.Lock()
	i := s.payments.index(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Payment{}, false, nil
	}
	if err := domain.Validate(entry); err != nil {
		s.mu.Unlock()
		return domain.Payment{}, true, err
	}
	payment := s.payments.items[i].Clone()
	payment.Post(entry)
	s.payments.items[i] = payment
	snap := s.checkpointLocked()
	s.mu.Unlock()

	s.publish(ctx, s.payments.name, "post", snap)
	return payment.Clone(), true, nil
}
