package dtos

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type VehiculeCreateRequest struct {
	Immatriculation string `json:"immatriculation" validate:"required"`
	Marque          string `json:"marque" validate:"required"`
	Modele          string `json:"modele" validate:"required"`
	Capacite        int    `json:"capacite" validate:"gte=0"`
}

type VehiculeUpdateRequest struct {
	Immatriculation *string `json:"immatriculation"`
	Marque          *string `json:"marque"`
	Modele          *string `json:"modele"`
	Capacite        *int    `json:"capacite" validate:"omitempty,gte=0"`
	Disponible      *bool   `json:"disponible"`
}

type VehiculeDTO struct {
	ID              int64  `json:"id"`
	Immatriculation string `json:"immatriculation"`
	Marque          string `json:"marque"`
	Modele          string `json:"modele"`
	Capacite        int    `json:"capacite"`
	Disponible      bool   `json:"disponible"`
}

func VehiculeToDTO(v models.Vehicule) VehiculeDTO {
	return VehiculeDTO{
		ID:              v.ID,
		Immatriculation: v.Immatriculation,
		Marque:          v.Marque,
		Modele:          v.Modele,
		Capacite:        v.Capacite,
		Disponible:      v.Disponible,
	}
}

// VehiculeResponse is the fleet-view shape: the stored vehicle plus the
// derived assignment label and the driver currently attached to it.
type VehiculeResponse struct {
	VehiculeDTO
	StatutAffichage string        `json:"statutAffichage"`
	Chauffeur       *ChauffeurDTO `json:"chauffeur,omitempty"`
}
