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

type Vehicule struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Immatriculation string `json:"immatriculation" gorm:"not null;uniqueIndex" validate:"required"`
	Marque          string `json:"marque" gorm:"not null" validate:"required"`
	Modele          string `json:"modele" gorm:"not null" validate:"required"`
	// payload capacity in kg
	Capacite   int  `json:"capacite" gorm:"not null" validate:"gte=0"`
	Disponible bool `json:"disponible" gorm:"not null;default:true"`
}

func (v Vehicule) TableName() string {
	return "vehicules"
}
