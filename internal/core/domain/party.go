package domain

import "time"

// Vendor is a supplier we receive invoices from.
type Vendor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client is a customer we issue invoices to.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
