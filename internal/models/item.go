package models

import "time"

// Item is a furniture listing.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"` // legacy field, kept because search still matches it
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	// RetailPrice and LocationID are nullable. The location reference is
	// an opaque identifier and is not checked against the locations table.
	RetailPrice  *float64  `json:"retailPrice"`
	LocationID   *string   `json:"locationId"`
	Available    bool      `json:"available"`
	URL          string    `json:"url,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
