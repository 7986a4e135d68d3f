package repository

import "github.com/magicvilla/villa-api/internal/core/domain"

// Column names shared by filters and storage drivers.
const (
	ColVillaID        = "id"
	ColVillaName      = "name"
	ColVillaNo        = "villa_no"
	ColVillaNumberRef = "villa_id"
	ColUserID         = "id"
	ColUserName       = "user_name"
)

// VillaSchema maps domain.Villa to the "villas" table or collection.
var VillaSchema = Schema[domain.Villa]{
	Name:         "villas",
	Key:          ColVillaID,
	GeneratedKey: true,
	Columns: []Column{
		{Name: ColVillaID, Immutable: true},
		{Name: ColVillaName},
		{Name: "details"},
		{Name: "rate"},
		{Name: "sqft"},
		{Name: "occupancy"},
		{Name: "image_url"},
		{Name: "amenity"},
		{Name: "created_date", Immutable: true},
		{Name: "updated_date"},
	},
	Unique: []string{ColVillaName},
	ID:     func(v *domain.Villa) int { return v.ID },
	SetID:  func(v *domain.Villa, id int) { v.ID = id },
	Values: func(v *domain.Villa) []any {
		return []any{v.ID, v.Name, v.Details, v.Rate, v.Sqft, v.Occupancy, v.ImageURL, v.Amenity, v.CreatedAt, v.UpdatedAt}
	},
	Pointers: func(v *domain.Villa) []any {
		return []any{&v.ID, &v.Name, &v.Details, &v.Rate, &v.Sqft, &v.Occupancy, &v.ImageURL, &v.Amenity, &v.CreatedAt, &v.UpdatedAt}
	},
}

// VillaNumberSchema maps domain.VillaNumber to "villa_numbers". The key is
// chosen by the caller.
var VillaNumberSchema = Schema[domain.VillaNumber]{
	Name: "villa_numbers",
	Key:  ColVillaNo,
	Columns: []Column{
		{Name: ColVillaNo, Immutable: true},
		{Name: ColVillaNumberRef},
		{Name: "special_details"},
		{Name: "created_date", Immutable: true},
		{Name: "updated_date"},
	},
	ID:    func(n *domain.VillaNumber) int { return n.VillaNo },
	SetID: func(n *domain.VillaNumber, id int) { n.VillaNo = id },
	Values: func(n *domain.VillaNumber) []any {
		return []any{n.VillaNo, n.VillaID, n.SpecialDetails, n.CreatedAt, n.UpdatedAt}
	},
	Pointers: func(n *domain.VillaNumber) []any {
		return []any{&n.VillaNo, &n.VillaID, &n.SpecialDetails, &n.CreatedAt, &n.UpdatedAt}
	},
}

// UserSchema maps domain.User to "local_users".
var UserSchema = Schema[domain.User]{
	Name:         "local_users",
	Key:          ColUserID,
	GeneratedKey: true,
	Columns: []Column{
		{Name: ColUserID, Immutable: true},
		{Name: ColUserName},
		{Name: "name"},
		{Name: "password_hash"},
		{Name: "role"},
	},
	Unique: []string{ColUserName},
	ID:     func(u *domain.User) int { return u.ID },
	SetID:  func(u *domain.User, id int) { u.ID = id },
	Values: func(u *domain.User) []any {
		return []any{u.ID, u.UserName, u.Name, u.PasswordHash, u.Role}
	},
	Pointers: func(u *domain.User) []any {
		return []any{&u.ID, &u.UserName, &u.Name, &u.PasswordHash, &u.Role}
	},
}
