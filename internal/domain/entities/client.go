package entities

import (
	"strings"
	"time"
)

// Client is a customer a proposal can be addressed to. Email, Phone and
// Company are optional.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName prefers the company and falls back to the contact name.
func (c Client) DisplayName() string {
	if v := strings.TrimSpace(c.Company); v != "" {
		return v
	}
	return strings.TrimSpace(c.Name)
}
