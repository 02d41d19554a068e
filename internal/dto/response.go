package dto

import "github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"usuario"`
}

// AvailabilityResponse is the live remaining-ticket count for a tier.
type AvailabilityResponse struct {
	TierID    uint `json:"idLocalidadDetalle"`
	Available int  `json:"cantidadDisponible"`
}

// ErrorResponse is the uniform rejection body.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
