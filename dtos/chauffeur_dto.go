// Copyright (C) 2025 the fleetdesk authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type ChauffeurCreateRequest struct {
	Nom          string    `json:"nom" validate:"required"`
	Prenom       string    `json:"prenom" validate:"required"`
	Telephone    string    `json:"telephone" validate:"required"`
	DateEmbauche time.Time `json:"dateEmbauche" validate:"required"`
	VehiculeID   *int64    `json:"vehiculeId"`

	// optional login for the driver portal
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type ChauffeurUpdateRequest struct {
	Nom        *string `json:"nom"`
	Prenom     *string `json:"prenom"`
	Telephone  *string `json:"telephone"`
	Actif      *bool   `json:"actif"`
	VehiculeID *int64  `json:"vehiculeId"`
}

type ChauffeurDTO struct {
	ID           int64     `json:"id"`
	Nom          string    `json:"nom"`
	Prenom       string    `json:"prenom"`
	Telephone    string    `json:"telephone"`
	Actif        bool      `json:"actif"`
	DateEmbauche time.Time `json:"dateEmbauche"`
	VehiculeID   *int64    `json:"vehiculeId"`

	// derived, never stored - see statemachine.DriverAvailability
	Statut string `json:"statut,omitempty"`
}

func ChauffeurToDTO(c models.Chauffeur) ChauffeurDTO {
	return ChauffeurDTO{
		ID:           c.ID,
		Nom:          c.Nom,
		Prenom:       c.Prenom,
		Telephone:    c.Telephone,
		Actif:        c.Actif,
		DateEmbauche: c.DateEmbauche,
		VehiculeID:   c.VehiculeID,
	}
}

// ChauffeurDeletionResult reports the outcome of a guarded driver deletion.
// Pending missions released back to the unassigned pool are counted so the
// caller can surface a warning.
type ChauffeurDeletionResult struct {
	Deleted          bool   `json:"deleted"`
	Warning          string `json:"warning,omitempty"`
	ReleasedMissions int64  `json:"releasedMissions"`
}
