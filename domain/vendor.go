package domain

// Vendor supplies products. Other records reference a vendor by its Name, not its ID,
// so renaming a vendor detaches its history.
type Vendor struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	Website       string `json:"website,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func (v Vendor) Clone() Vendor {
	return v
}

type VendorPatch struct {
	Name          *string `json:"name,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Website       *string `json:"website,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (p VendorPatch) Apply(v *Vendor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.CompanyName != nil {
		v.CompanyName = *p.CompanyName
	}
	if p.ContactPerson != nil {
		v.ContactPerson = *p.ContactPerson
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Website != nil {
		v.Website = *p.Website
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
}

// VendorUsage lists the ids of every record that references a vendor by name.
type VendorUsage struct {
	Vendor     string   `json:"vendor"`
	Products   []string `json:"products"`
	Deliveries []string `json:"deliveries"`
	Payments   []string `json:"payments"`
	Issues     []string `json:"issues"`
}

func (u VendorUsage) Total() int {
	return len(u.Products) + len(u.Deliveries) + len(u.Payments) + len(u.Issues)
}
