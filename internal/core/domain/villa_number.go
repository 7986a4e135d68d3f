package domain

import "time"

// VillaNumber is a numbered unit belonging to a Villa. VillaNo is chosen by
// the caller and acts as the identity; VillaID must reference an existing Villa.
type VillaNumber struct {
	VillaNo        int       `json:"villaNo" bson:"_id"`
	VillaID        int       `json:"villaID" bson:"villa_id"`
	SpecialDetails string    `json:"specialDetails" bson:"special_details"`
	CreatedAt      time.Time `json:"createdDate" bson:"created_date"`
	UpdatedAt      time.Time `json:"updatedDate" bson:"updated_date"`
}
