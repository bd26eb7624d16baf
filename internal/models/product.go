package models

// Product is a catalog entry redeemable for points.
//
// The catalog is seeded once at startup and read-only through the API.
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Image is an optional asset path (e.g. "/assets/donut.jpg").
	Image string `json:"image,omitempty"`

	// Price is the cost in whole points. Always positive.
	Price int `json:"price"`

	// Description is optional marketing copy.
	Description string `json:"description,omitempty"`
}
