package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models a registered principal. Users are created once and never deleted.
type User struct {
	ID           int    `json:"id" bson:"_id"`
	UserName     string `json:"userName" bson:"user_name"`
	Name         string `json:"name" bson:"name"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         string `json:"role" bson:"role"`
}
