package ports

import (
	"context"

	"github.com/magicvilla/villa-api/internal/core/dto"
)

// VillaService exposes villa use cases to the transport layer.
type VillaService interface {
	List(ctx context.Context) ([]dto.VillaDTO, error)
	Get(ctx context.Context, id int) (*dto.VillaDTO, error)
	Create(ctx context.Context, in dto.VillaCreateDTO) (*dto.VillaDTO, error)
	Update(ctx context.Context, id int, in dto.VillaUpdateDTO) (*dto.VillaDTO, error)
	Patch(ctx context.Context, id int, document []byte) (*dto.VillaDTO, error)
	Delete(ctx context.Context, id int) error
}

// VillaNumberService exposes villa number use cases to the transport layer.
type VillaNumberService interface {
	List(ctx context.Context) ([]dto.VillaNumberDTO, error)
	Get(ctx context.Context, villaNo int) (*dto.VillaNumberDTO, error)
	Create(ctx context.Context, in dto.VillaNumberCreateDTO) (*dto.VillaNumberDTO, error)
	Update(ctx context.Context, villaNo int, in dto.VillaNumberUpdateDTO) (*dto.VillaNumberDTO, error)
	Patch(ctx context.Context, villaNo int, document []byte) (*dto.VillaNumberDTO, error)
	Delete(ctx context.Context, villaNo int) error
}

type AuthService interface {
	IsUniqueUser(ctx context.Context, userName string) (bool, error)
	Register(ctx context.Context, in dto.RegistrationRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}
