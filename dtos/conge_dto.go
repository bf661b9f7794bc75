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

type CongeCreateRequest struct {
	DateDebut time.Time `json:"dateDebut" validate:"required"`
	DateFin   time.Time `json:"dateFin" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=CONGE_ANNUEL CONGE_MALADIE CONGE_PERSONNEL CONGE_URGENCE AUTRE"`
	Raison    string    `json:"raison"`
}

type CongeDTO struct {
	ID          int64     `json:"id"`
	ChauffeurID int64     `json:"chauffeurId"`
	DateDebut   time.Time `json:"dateDebut"`
	DateFin     time.Time `json:"dateFin"`
	Type        string    `json:"type"`
	Raison      string    `json:"raison,omitempty"`

	// the effective status: legacy rows without a stored statut resolve
	// through the acceptee flag
	Statut string `json:"statut"`

	Chauffeur *ChauffeurDTO `json:"chauffeur,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// CongeToDTO expects the caller to pass the resolved effective status so
// this package does not depend on the statemachine.
func CongeToDTO(i models.Indisponibilite, statut models.StatutConge) CongeDTO {
	dto := CongeDTO{
		ID:          i.ID,
		ChauffeurID: i.ChauffeurID,
		DateDebut:   i.DateDebut,
		DateFin:     i.DateFin,
		Type:        string(i.Type),
		Raison:      i.Raison,
		Statut:      string(statut),
		CreatedAt:   i.CreatedAt,
	}
	if i.Chauffeur != nil {
		chauffeur := ChauffeurToDTO(*i.Chauffeur)
		dto.Chauffeur = &chauffeur
	}
	return dto
}
