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

package database

import (
	"log/slog"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date. Vehicles and drivers migrate
// before missions so the foreign keys resolve.
func RunMigrations(db *gorm.DB) error {
	slog.Info("running database migrations")

	return db.AutoMigrate(
		&models.Config{},
		&models.Vehicule{},
		&models.Chauffeur{},
		&models.Employe{},
		&models.User{},
		&models.AccessToken{},
		&models.Mission{},
		&models.Indisponibilite{},
		&models.Notification{},
	)
}
