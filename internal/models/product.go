package models

// Product is a bookable salon service shown in the catalog.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`

	// DurationMin is only set on seeded services.
	DurationMin int `json:"duration,omitempty"`
}
