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

type Employe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nom    string `json:"nom" gorm:"not null" validate:"required"`
	Prenom string `json:"prenom" gorm:"not null" validate:"required"`
	Email  string `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`

	UserID *uuid.UUID `json:"-" gorm:"type:uuid"`
}

func (e Employe) TableName() string {
	return "employes"
}

func (e Employe) FullName() string {
	return e.Nom + " " + e.Prenom
}
