package domain

// ClientAccountStatus reports whether a client account is in use.
type ClientAccountStatus string

const (
	ClientActive   ClientAccountStatus = "Active"
	ClientInactive ClientAccountStatus = "Inactive"
)

func (s ClientAccountStatus) Valid() bool {
	return s == ClientActive || s == ClientInactive
}

// ClientType separates external investors from internal projects.
type ClientType string

const (
	ClientInvestor ClientType = "Investor"
	ClientInternal ClientType = "Internal"
)

func (t ClientType) Valid() bool {
	return t == ClientInvestor || t == ClientInternal
}

type ApartmentType string

const (
	ApartmentFurnishing ApartmentType = "furnishing"
	ApartmentRenovating ApartmentType = "renovating"
)

func (t ApartmentType) Valid() bool {
	return t == ApartmentFurnishing || t == ApartmentRenovating
}

type ApartmentStatus string

const (
	ApartmentPlanning       ApartmentStatus = "Planning"
	ApartmentDesignApproved ApartmentStatus = "Design Approved"
	ApartmentOrdering       ApartmentStatus = "Ordering"
	ApartmentDelivery       ApartmentStatus = "Delivery"
	ApartmentInstallation   ApartmentStatus = "Installation"
	ApartmentCompleted      ApartmentStatus = "Completed"
)

func (s ApartmentStatus) Valid() bool {
	switch s {
	case ApartmentPlanning, ApartmentDesignApproved, ApartmentOrdering,
		ApartmentDelivery, ApartmentInstallation, ApartmentCompleted:
		return true
	}
	return false
}

type ProductAvailability string

const (
	AvailabilityInStock      ProductAvailability = "In Stock"
	AvailabilityBackorder    ProductAvailability = "Backorder"
	AvailabilityOutOfStock   ProductAvailability = "Out of Stock"
	AvailabilityDiscontinued ProductAvailability = "Discontinued"
)

func (a ProductAvailability) Valid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityBackorder, AvailabilityOutOfStock, AvailabilityDiscontinued:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductDesignApproved ProductStatus = "Design Approved"
	ProductReadyToOrder   ProductStatus = "Ready To Order"
	ProductOrdered        ProductStatus = "Ordered"
	ProductShipped        ProductStatus = "Shipped"
	ProductDelivered      ProductStatus = "Delivered"
	ProductInstalled      ProductStatus = "Installed"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductDesignApproved, ProductReadyToOrder, ProductOrdered,
		ProductShipped, ProductDelivered, ProductInstalled:
		return true
	}
	return false
}

type ProductPaymentStatus string

const (
	ProductUnpaid        ProductPaymentStatus = "Unpaid"
	ProductPartiallyPaid ProductPaymentStatus = "Partially Paid"
	ProductPaid          ProductPaymentStatus = "Paid"
)

func (s ProductPaymentStatus) Valid() bool {
	return s == ProductUnpaid || s == ProductPartiallyPaid || s == ProductPaid
}

type ProductIssueState string

const (
	IssueStateNone     ProductIssueState = "No Issue"
	IssueStateReported ProductIssueState = "Issue Reported"
	IssueStateResolved ProductIssueState = "Resolved"
)

func (s ProductIssueState) Valid() bool {
	return s == IssueStateNone || s == IssueStateReported || s == IssueStateResolved
}

type DeliveryStatus string

const (
	DeliveryScheduled DeliveryStatus = "Scheduled"
	DeliveryInTransit DeliveryStatus = "In Transit"
	DeliveryDelivered DeliveryStatus = "Delivered"
	DeliveryDelayed   DeliveryStatus = "Delayed"
	DeliveryCancelled DeliveryStatus = "Cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryScheduled, DeliveryInTransit, DeliveryDelivered, DeliveryDelayed, DeliveryCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartial, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

type IssueStatus string

const (
	IssueOpen     IssueStatus = "Open"
	IssuePending  IssueStatus = "Pending"
	IssueResolved IssueStatus = "Resolved"
)

func (s IssueStatus) Valid() bool {
	return s == IssueOpen || s == IssuePending || s == IssueResolved
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type ActivityType string

const (
	ActivityOrder    ActivityType = "order"
	ActivityPayment  ActivityType = "payment"
	ActivityDelivery ActivityType = "delivery"
	ActivityIssue    ActivityType = "issue"
	ActivityStatus   ActivityType = "status"
	ActivityComment  ActivityType = "comment"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityOrder, ActivityPayment, ActivityDelivery, ActivityIssue, ActivityStatus, ActivityComment:
		return true
	}
	return false
}

// MessageSender identifies who wrote an entry of an issue's communication log.
type MessageSender string

const (
	SenderAI     MessageSender = "ai"
	SenderVendor MessageSender = "vendor"
	SenderTeam   MessageSender = "team"
)

func (s MessageSender) Valid() bool {
	return s == SenderAI || s == SenderVendor || s == SenderTeam
}
