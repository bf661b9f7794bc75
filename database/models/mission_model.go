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

import (
	"time"
)

type EtatMission string

const (
	EtatEnAttente EtatMission = "EN_ATTENTE"
	EtatCommencee EtatMission = "COMMENCEE"
	EtatEnCours   EtatMission = "EN_COURS"
	EtatTerminee  EtatMission = "TERMINEE"
	EtatRefusee   EtatMission = "REFUSEE"
)

// IsTerminal reports whether no further lifecycle transition is possible.
func (e EtatMission) IsTerminal() bool {
	return e == EtatTerminee || e == EtatRefusee
}

// IsActive reports whether the mission is currently being driven.
// COMMENCEE and EN_COURS are synonyms throughout the system.
func (e EtatMission) IsActive() bool {
	return e == EtatCommencee || e == EtatEnCours
}

type TypeMission string

const (
	TypeMateriel  TypeMission = "materiel"
	TypeDocument  TypeMission = "document"
	TypePersonnel TypeMission = "personnel"
)

type Mission struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Depart      string      `json:"depart" gorm:"not null" validate:"required"`
	Destination string      `json:"destination" gorm:"not null" validate:"required"`
	DateHeure   time.Time   `json:"dateHeure" gorm:"not null" validate:"required"`
	TypeMission TypeMission `json:"typeMission" gorm:"not null" validate:"required,oneof=materiel document personnel"`
	// free text, informational only - never affects transitions
	Instructions string `json:"instructions" gorm:"type:text"`

	// Etat is the single source of truth for mission progress.
	Etat EtatMission `json:"etat" gorm:"not null;default:EN_ATTENTE"`
	// Acceptee is meaningful only while Etat == EN_ATTENTE. Once the mission
	// starts, acceptance is implied and the flag becomes inert history.
	Acceptee bool `json:"acceptee" gorm:"not null;default:false"`
	// Probleme non-empty signals the assigned driver flagged an in-progress
	// issue. Invariant: only ever non-empty while the mission is active.
	Probleme string `json:"probleme" gorm:"type:text"`

	EmployeID   int64      `json:"employeId"`
	Employe     *Employe   `json:"employe,omitempty" gorm:"foreignKey:EmployeID"`
	ChauffeurID *int64     `json:"chauffeurId"`
	Chauffeur   *Chauffeur `json:"chauffeur,omitempty" gorm:"foreignKey:ChauffeurID"`
	VehiculeID  *int64     `json:"vehiculeId"`
	Vehicule    *Vehicule  `json:"vehicule,omitempty" gorm:"foreignKey:VehiculeID"`
}

func (m Mission) TableName() string {
	return "missions"
}

// HasOpenProblem reports whether the driver flagged a problem which has not
// been resolved by completion or reassignment yet.
func (m Mission) HasOpenProblem() bool {
	return m.Probleme != ""
}
