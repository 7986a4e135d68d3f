package domain

import "time"

// Villa is a rentable property. ID is assigned by the store and never changes.
type Villa struct {
	ID        int       `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Details   string    `json:"details" bson:"details"`
	Rate      float64   `json:"rate" bson:"rate"`
	Sqft      int       `json:"sqft" bson:"sqft"`
	Occupancy int       `json:"occupancy" bson:"occupancy"`
	ImageURL  string    `json:"imageUrl" bson:"image_url"`
	Amenity   string    `json:"amenity" bson:"amenity"`
	CreatedAt time.Time `json:"createdDate" bson:"created_date"`
	UpdatedAt time.Time `json:"updatedDate" bson:"updated_date"`
}
