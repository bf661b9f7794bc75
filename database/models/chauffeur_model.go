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

	"github.com/google/uuid"
)

type Chauffeur struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nom       string `json:"nom" gorm:"not null" validate:"required"`
	Prenom    string `json:"prenom" gorm:"not null" validate:"required"`
	Telephone string `json:"telephone" gorm:"not null" validate:"required"`

	// administrative flag - an inactive chauffeur is not dispatchable, but an
	// already running mission keeps them EN_MISSION regardless
	Actif        bool      `json:"actif" gorm:"not null;default:true"`
	DateEmbauche time.Time `json:"dateEmbauche" gorm:"not null"`

	VehiculeID *int64    `json:"vehiculeId"`
	Vehicule   *Vehicule `json:"vehicule,omitempty" gorm:"foreignKey:VehiculeID"`

	UserID *uuid.UUID `json:"-" gorm:"type:uuid"`
}

func (c Chauffeur) TableName() string {
	return "chauffeurs"
}

func (c Chauffeur) FullName() string {
	return c.Nom + " " + c.Prenom
}
