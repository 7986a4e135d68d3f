package dto

type VillaNumberDTO struct {
	VillaNo        int    `json:"villaNo"`
	VillaID        int    `json:"villaID"`
	SpecialDetails string `json:"specialDetails"`
}

type VillaNumberCreateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required"`
	SpecialDetails string `json:"specialDetails"`
}

type VillaNumberUpdateDTO struct {
	VillaNo        int    `json:"villaNo" validate:"required,gt=0"`
	VillaID        int    `json:"villaID" validate:"required"`
	SpecialDetails string `json:"specialDetails"`
}
