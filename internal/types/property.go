// Package types provides type definitions for structured data used throughout the listing SEO system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// PropertyData describes a single real-estate listing as entered by the user.
// It is immutable once submitted for a generation cycle.
type PropertyData struct {
	Type      string `json:"type" validate:"required"`
	Area      string `json:"area"`
	Price     string `json:"price" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Project   string `json:"project"`
	Amenities string `json:"amenities"`
	Legal     string `json:"legal"`
	Contact   string `json:"contact"`
}

// Validate checks the minimal submission requirements: type, price and
// location must be non-empty. This is the only input validation in the system.
func (p *PropertyData) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
