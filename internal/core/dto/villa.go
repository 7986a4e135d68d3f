// Package dto holds the request and response shapes exchanged over HTTP.
package dto

// VillaDTO is the public representation of a villa.
type VillaDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate"`
	Occupancy int     `json:"occupancy"`
	Sqft      int     `json:"sqft"`
	ImageURL  string  `json:"imageUrl"`
	Amenity   string  `json:"amenity"`
}

type VillaCreateDTO struct {
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl" validate:"omitempty,url"`
	Amenity   string  `json:"amenity"`
}

// VillaUpdateDTO is the full replacement body of PUT and the patch target of PATCH.
type VillaUpdateDTO struct {
	ID        int     `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required,max=30"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	Occupancy int     `json:"occupancy" validate:"gte=0"`
	Sqft      int     `json:"sqft" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl" validate:"omitempty,url"`
	Amenity   string  `json:"amenity"`
}
