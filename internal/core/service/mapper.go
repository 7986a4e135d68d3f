package service

import (
	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/dto"
)

func toVillaDTO(v *domain.Villa) dto.VillaDTO {
	return dto.VillaDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

func toVillaDTOs(vs []domain.Villa) []dto.VillaDTO {
	out := make([]dto.VillaDTO, len(vs))
	for i := range vs {
		out[i] = toVillaDTO(&vs[i])
	}
	return out
}

func villaFromCreate(in dto.VillaCreateDTO) *domain.Villa {
	return &domain.Villa{
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Occupancy: in.Occupancy,
		Sqft:      in.Sqft,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}

func villaFromUpdate(in dto.VillaUpdateDTO) *domain.Villa {
	return &domain.Villa{
		ID:        in.ID,
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Occupancy: in.Occupancy,
		Sqft:      in.Sqft,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}

func toVillaUpdateDTO(v *domain.Villa) dto.VillaUpdateDTO {
	return dto.VillaUpdateDTO{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

func toVillaNumberDTO(n *domain.VillaNumber) dto.VillaNumberDTO {
	return dto.VillaNumberDTO{VillaNo: n.VillaNo, VillaID: n.VillaID, SpecialDetails: n.SpecialDetails}
}

func toVillaNumberDTOs(ns []domain.VillaNumber) []dto.VillaNumberDTO {
	out := make([]dto.VillaNumberDTO, len(ns))
	for i := range ns {
		out[i] = toVillaNumberDTO(&ns[i])
	}
	return out
}

func villaNumberFromCreate(in dto.VillaNumberCreateDTO) *domain.VillaNumber {
	return &domain.VillaNumber{VillaNo: in.VillaNo, VillaID: in.VillaID, SpecialDetails: in.SpecialDetails}
}

func villaNumberFromUpdate(in dto.VillaNumberUpdateDTO) *domain.VillaNumber {
	return &domain.VillaNumber{VillaNo: in.VillaNo, VillaID: in.VillaID, SpecialDetails: in.SpecialDetails}
}

func toVillaNumberUpdateDTO(n *domain.VillaNumber) dto.VillaNumberUpdateDTO {
	return dto.VillaNumberUpdateDTO{VillaNo: n.VillaNo, VillaID: n.VillaID, SpecialDetails: n.SpecialDetails}
}

func toUserDTO(u *domain.User) *dto.UserDTO {
	return &dto.UserDTO{ID: u.ID, UserName: u.UserName, Name: u.Name, Role: u.Role}
}
