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

package models

import "time"

type StatutConge string

const (
	CongeEnAttente StatutConge = "EN_ATTENTE"
	CongeAcceptee  StatutConge = "ACCEPTEE"
	CongeRefusee   StatutConge = "REFUSEE"
)

type TypeConge string

const (
	CongeAnnuel    TypeConge = "CONGE_ANNUEL"
	CongeMaladie   TypeConge = "CONGE_MALADIE"
	CongePersonnel TypeConge = "CONGE_PERSONNEL"
	CongeUrgence   TypeConge = "CONGE_URGENCE"
	CongeAutre     TypeConge = "AUTRE"
)

// Indisponibilite is a driver's requested unavailability window (leave
// request). It runs its own two-step state machine: EN_ATTENTE is the only
// non-terminal state, an admin transitions it exactly once.
type Indisponibilite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ChauffeurID int64      `json:"chauffeurId" gorm:"not null"`
	Chauffeur   *Chauffeur `json:"chauffeur,omitempty" gorm:"foreignKey:ChauffeurID"`

	DateDebut time.Time `json:"dateDebut" gorm:"not null" validate:"required"`
	DateFin   time.Time `json:"dateFin" gorm:"not null" validate:"required"`
	Type      TypeConge `json:"type" gorm:"not null" validate:"required"`
	Raison    string    `json:"raison" gorm:"type:text"`

	// Statut is empty on rows written before the tri-state field existed.
	// Display and transition eligibility must fall back to the legacy
	// Acceptee flag in that case (see statemachine.EffectiveLeaveStatus).
	Statut   StatutConge `json:"statut"`
	Acceptee bool        `json:"acceptee" gorm:"not null;default:false"`
}

func (i Indisponibilite) TableName() string {
	return "indisponibilites"
}
