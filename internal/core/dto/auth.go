package dto

// RegistrationRequest is the body of POST /api/UsersAuth/register.
type RegistrationRequest struct {
	UserName string `json:"userName" validate:"required,max=64"`
	Name     string `json:"name" validate:"max=128"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserDTO is a principal without credentials.
type UserDTO struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse carries the authenticated user and bearer token. Both are
// empty when the credentials were rejected.
type LoginResponse struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
