package domain

import "time"

// MenuItem is a dish on the public menu. Price is carried as a decimal
// string ("12.50") so no precision is lost between the store and JSON.
type MenuItem struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Recipe    string    `json:"recipe"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is a customer testimonial shown on the storefront.
type Review struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
