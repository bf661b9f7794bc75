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

type MissionCreateRequest struct {
	Depart       string    `json:"depart" validate:"required"`
	Destination  string    `json:"destination" validate:"required"`
	DateHeure    time.Time `json:"dateHeure" validate:"required"`
	Type         string    `json:"typeMission" validate:"required,oneof=materiel document personnel"`
	Instructions string    `json:"instructions"`

	ChauffeurID *int64 `json:"chauffeurId"`
	VehiculeID  *int64 `json:"vehiculeId"`
}

type MissionUpdateRequest struct {
	Depart       *string    `json:"depart"`
	Destination  *string    `json:"destination"`
	DateHeure    *time.Time `json:"dateHeure"`
	Type         *string    `json:"typeMission"`
	Instructions *string    `json:"instructions"`
	VehiculeID   *int64     `json:"vehiculeId"`
}

type MissionDTO struct {
	ID           int64     `json:"id"`
	Depart       string    `json:"depart"`
	Destination  string    `json:"destination"`
	DateHeure    time.Time `json:"dateHeure"`
	Type         string    `json:"typeMission"`
	Instructions string    `json:"instructions,omitempty"`

	Etat     string `json:"etat"`
	Acceptee bool   `json:"acceptee"`
	Probleme string `json:"probleme,omitempty"`

	EmployeID   int64  `json:"employeId"`
	ChauffeurID *int64 `json:"chauffeurId"`
	VehiculeID  *int64 `json:"vehiculeId"`

	Employe   *EmployeDTO   `json:"employe,omitempty"`
	Chauffeur *ChauffeurDTO `json:"chauffeur,omitempty"`
	Vehicule  *VehiculeDTO  `json:"vehicule,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func MissionToDTO(m models.Mission) MissionDTO {
	dto := MissionDTO{
		ID:           m.ID,
		Depart:       m.Depart,
		Destination:  m.Destination,
		DateHeure:    m.DateHeure,
		Type:         string(m.TypeMission),
		Instructions: m.Instructions,
		Etat:         string(m.Etat),
		Acceptee:     m.Acceptee,
		Probleme:     m.Probleme,
		EmployeID:    m.EmployeID,
		ChauffeurID:  m.ChauffeurID,
		VehiculeID:   m.VehiculeID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.Employe != nil {
		employe := EmployeToDTO(*m.Employe)
		dto.Employe = &employe
	}
	if m.Chauffeur != nil {
		chauffeur := ChauffeurToDTO(*m.Chauffeur)
		dto.Chauffeur = &chauffeur
	}
	if m.Vehicule != nil {
		vehicule := VehiculeToDTO(*m.Vehicule)
		dto.Vehicule = &vehicule
	}

	return dto
}

func MissionsToDTOs(missions []models.Mission) []MissionDTO {
	dtosList := make([]MissionDTO, len(missions))
	for i, m := range missions {
		dtosList[i] = MissionToDTO(m)
	}
	return dtosList
}
