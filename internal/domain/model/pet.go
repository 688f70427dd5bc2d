package model

import (
	"time"
)

// AlienPet is a single public listing. ImageURL is empty when no image was
// uploaded with the listing.
type AlienPet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Planet      string    `json:"planet"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
