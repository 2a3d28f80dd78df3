package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fastygo/furnish/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

// fixtures is the state a store starts from when nothing was ever persisted.
func fixtures() domain.Snapshot {
	return domain.Snapshot{
		Version: domain.SnapshotVersion,
		Clients: []domain.Client{
			{ID: "client-1", Name: "Harbor Capital", Email: "ops@harborcapital.com", Phone: "+1 555 0100",
				AccountStatus: domain.ClientActive, Type: domain.ClientInvestor, CreatedAt: day(2024, time.January, 8)},
			{ID: "client-2", Name: "Maya Lindqvist", Email: "maya@lindqvist.se", Phone: "+46 70 555 0142",
				AccountStatus: domain.ClientActive, Type: domain.ClientInvestor, CreatedAt: day(2024, time.February, 19)},
			{ID: "client-3", Name: "Internal Portfolio", Email: "portfolio@furnish.local",
				AccountStatus: domain.ClientInactive, Type: domain.ClientInternal, CreatedAt: day(2023, time.November, 2)},
		},
		Apartments: []domain.Apartment{
			{ID: "apt-1", Name: "Riverside Loft 4B", Address: "12 Quay Street", Type: domain.ApartmentFurnishing,
				ClientID: "client-1", Status: domain.ApartmentOrdering, Progress: 45, Budget: decimal.NewFromInt(42000),
				StartDate: dayPtr(2024, time.March, 1), DueDate: dayPtr(2024, time.June, 30)},
			{ID: "apt-2", Name: "Old Town Studio", Address: "3 Market Lane", Type: domain.ApartmentRenovating,
				ClientID: "client-2", Status: domain.ApartmentDesignApproved, Progress: 20, Budget: decimal.NewFromInt(68000),
				StartDate: dayPtr(2024, time.April, 15), DueDate: dayPtr(2024, time.September, 15)},
			{ID: "apt-3", Name: "Garden Residence 2", Address: "88 Linden Avenue", Type: domain.ApartmentFurnishing,
				ClientID: "client-3", Status: domain.ApartmentCompleted, Progress: 100, Budget: decimal.NewFromInt(25000),
				StartDate: dayPtr(2023, time.December, 1), DueDate: dayPtr(2024, time.February, 28)},
		},
		Vendors: []domain.Vendor{
			{ID: "vendor-1", Name: "Nordic Living", CompanyName: "Nordic Living AB", ContactPerson: "Erik Holm",
				Email: "orders@nordicliving.se", Phone: "+46 8 555 0110", Website: "https://nordicliving.se"},
			{ID: "vendor-2", Name: "Casa Interiors", CompanyName: "Casa Interiors S.L.", ContactPerson: "Lucia Ortega",
				Email: "sales@casainteriors.es", Phone: "+34 91 555 0199"},
			{ID: "vendor-3", Name: "Lumen Lighting", CompanyName: "Lumen Lighting GmbH", ContactPerson: "Jonas Weber",
				Email: "service@lumen-lighting.de", Notes: "Ships in two batches"},
		},
		Products: []domain.Product{
			{ID: "product-1", ApartmentID: "apt-1", Name: "Oslo 3-seat sofa", Category: "Seating", Room: "Living room",
				Vendor: "Nordic Living", SKU: "NL-SOFA-OSLO-3", UnitPrice: decimal.NewFromInt(2400), Qty: 1,
				Availability: domain.AvailabilityInStock, Status: domain.ProductOrdered, PaymentStatus: domain.ProductPartiallyPaid,
				IssueState: domain.IssueStateNone, ExpectedDelivery: dayPtr(2024, time.May, 20)},
			{ID: "product-2", ApartmentID: "apt-1", Name: "Oak dining table", Category: "Tables", Room: "Dining",
				Vendor: "Casa Interiors", SKU: "CI-TBL-OAK-180", UnitPrice: decimal.NewFromInt(1850), Qty: 1,
				Availability: domain.AvailabilityBackorder, Status: domain.ProductShipped, PaymentStatus: domain.ProductPaid,
				IssueState: domain.IssueStateReported, IssueID: "issue-1", ExpectedDelivery: dayPtr(2024, time.May, 12)},
			{ID: "product-3", ApartmentID: "apt-1", Name: "Halo pendant lamp", Category: "Lighting", Room: "Dining",
				Vendor: "Lumen Lighting", SKU: "LL-HALO-60", UnitPrice: decimal.NewFromInt(320), Qty: 3,
				Availability: domain.AvailabilityInStock, Status: domain.ProductReadyToOrder, PaymentStatus: domain.ProductUnpaid,
				IssueState: domain.IssueStateNone},
			{ID: "product-4", ApartmentID: "apt-2", Name: "Linen bed frame", Category: "Bedroom", Room: "Bedroom",
				Vendor: "Nordic Living", SKU: "NL-BED-LIN-160", UnitPrice: decimal.NewFromInt(1290), Qty: 1,
				Availability: domain.AvailabilityOutOfStock, Status: domain.ProductDesignApproved, PaymentStatus: domain.ProductUnpaid,
				IssueState: domain.IssueStateReported, IssueID: "issue-2"},
		},
		Deliveries: []domain.Delivery{
			{ID: "delivery-1", ApartmentID: "apt-1", Vendor: "Casa Interiors", OrderReference: "CI-2024-0412",
				ExpectedDate: day(2024, time.May, 12), Status: domain.DeliveryInTransit},
			{ID: "delivery-2", ApartmentID: "apt-1", Vendor: "Nordic Living", OrderReference: "NL-88231",
				ExpectedDate: day(2024, time.May, 20), Status: domain.DeliveryScheduled, Notes: "Call concierge before arrival"},
		},
		Payments: []domain.Payment{
			{ID: "payment-1", ApartmentID: "apt-1", Vendor: "Nordic Living", OrderReference: "NL-88231",
				TotalAmount: decimal.NewFromInt(2400), AmountPaid: decimal.NewFromInt(1200), Status: domain.PaymentPartial,
				DueDate: dayPtr(2024, time.May, 31), LastPaymentDate: dayPtr(2024, time.April, 10),
				PaymentHistory: []domain.PaymentEntry{
					{ID: "entry-1", Date: day(2024, time.April, 10), Amount: decimal.NewFromInt(1200), Method: "Bank transfer", Reference: "TRX-5531"},
				}},
			{ID: "payment-2", ApartmentID: "apt-1", Vendor: "Casa Interiors", OrderReference: "CI-2024-0412",
				TotalAmount: decimal.NewFromInt(1850), AmountPaid: decimal.NewFromInt(1850), Status: domain.PaymentPaid,
				LastPaymentDate: dayPtr(2024, time.April, 22),
				PaymentHistory: []domain.PaymentEntry{
					{ID: "entry-2", Date: day(2024, time.April, 2), Amount: decimal.NewFromInt(925), Method: "Card"},
					{ID: "entry-3", Date: day(2024, time.April, 22), Amount: decimal.NewFromInt(925), Method: "Card", Note: "Balance"},
				}},
		},
		Issues: []domain.Issue{
			{ID: "issue-1", ApartmentID: "apt-1", ProductID: "product-2", Vendor: "Casa Interiors", Type: "Damaged",
				Description: "Table top scratched on arrival at the warehouse", Status: domain.IssuePending, Priority: domain.PriorityHigh,
				ReportedOn: day(2024, time.May, 2),
				AICommunicationLog: []domain.CommunicationEntry{
					{Timestamp: day(2024, time.May, 2), Sender: domain.SenderAI, Message: "Reported scratch with photos, requested replacement top."},
					{Timestamp: day(2024, time.May, 3), Sender: domain.SenderVendor, Message: "Replacement top dispatched with the next shipment."},
				}},
			{ID: "issue-2", ApartmentID: "apt-2", ProductID: "product-4", Vendor: "Nordic Living", Type: "Delayed",
				Description: "Bed frame out of stock until further notice", Status: domain.IssueOpen, Priority: domain.PriorityMedium,
				ReportedOn: day(2024, time.May, 6),
				AICommunicationLog: []domain.CommunicationEntry{
					{Timestamp: day(2024, time.May, 6), Sender: domain.SenderAI, Message: "Asked for a restock date or an alternative model."},
				}},
		},
		Activities: []domain.Activity{
			{ID: "activity-1", ApartmentID: "apt-1", Timestamp: day(2024, time.April, 2), Actor: "Anna (Procurement)",
				Summary: "Ordered oak dining table from Casa Interiors", Type: domain.ActivityOrder},
			{ID: "activity-2", ApartmentID: "apt-1", Timestamp: day(2024, time.April, 10), Actor: "Finance",
				Summary: "Paid 1200 to Nordic Living", Type: domain.ActivityPayment},
			{ID: "activity-3", ApartmentID: "apt-1", Timestamp: day(2024, time.May, 2), Actor: "AI assistant",
				Summary: "Opened damage issue for oak dining table", Type: domain.ActivityIssue},
			{ID: "activity-4", ApartmentID: "apt-2", Timestamp: day(2024, time.April, 18), Actor: "Anna (Procurement)",
				Summary: "Design approved by client", Type: domain.ActivityStatus},
		},
		AINotes: []domain.AINote{
			{ID: "note-1", ApartmentID: "apt-1", Timestamp: day(2024, time.May, 4),
				Summary:    "Ordering is on track except for the damaged dining table.",
				Highlights: []string{"Replacement table top dispatched", "1200 outstanding to Nordic Living"}},
		},
		ManualNotes: []domain.ManualNote{},
	}
}
