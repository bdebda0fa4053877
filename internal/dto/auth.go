package dto

type LoginRequestDTO struct {
	Gateway string `json:"gateway" validate:"required,min=1,max=64"`
	Secret  string `json:"secret" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
