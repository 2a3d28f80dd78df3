package domain

import "time"

// Client owns one or more apartments.
type Client struct {
	ID            string              `json:"id"`
	Name          string              `json:"name" validate:"required"`
	Email         string              `json:"email" validate:"omitempty,email"`
	Phone         string              `json:"phone"`
	AccountStatus ClientAccountStatus `json:"account_status" validate:"enum"`
	Type          ClientType          `json:"type" validate:"enum"`
	CreatedAt     time.Time           `json:"created_at"`
}

func (c Client) Clone() Client {
	return c
}

func (c *Client) IsActive() bool {
	return c != nil && c.AccountStatus == ClientActive
}

// ClientPatch carries the fields of a partial client update; nil fields are left untouched.
type ClientPatch struct {
	Name          *string              `json:"name,omitempty"`
	Email         *string              `json:"email,omitempty"`
	Phone         *string              `json:"phone,omitempty"`
	AccountStatus *ClientAccountStatus `json:"account_status,omitempty"`
	Type          *ClientType          `json:"type,omitempty"`
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.AccountStatus != nil {
		c.AccountStatus = *p.AccountStatus
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
}
