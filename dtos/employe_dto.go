package dtos

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type EmployeCreateRequest struct {
	Nom    string `json:"nom" validate:"required"`
	Prenom string `json:"prenom" validate:"required"`
	Email  string `json:"email" validate:"required,email"`

	Password string `json:"password" validate:"omitempty,min=8"`
}

type EmployeUpdateRequest struct {
	Nom    *string `json:"nom"`
	Prenom *string `json:"prenom"`
	Email  *string `json:"email" validate:"omitempty,email"`
}

type EmployeDTO struct {
	ID     int64  `json:"id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
}

func EmployeToDTO(e models.Employe) EmployeDTO {
	return EmployeDTO{
		ID:     e.ID,
		Nom:    e.Nom,
		Prenom: e.Prenom,
		Email:  e.Email,
	}
}
