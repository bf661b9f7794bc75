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

package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormChauffeurRepository struct {
	utils.Repository[int64, models.Chauffeur, *gorm.DB]
	db *gorm.DB
}

func NewChauffeurRepository(db *gorm.DB) *gormChauffeurRepository {
	return &gormChauffeurRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Chauffeur](db),
	}
}

func (g *gormChauffeurRepository) GetAll() ([]models.Chauffeur, error) {
	var chauffeurs []models.Chauffeur
	err := g.db.Preload("Vehicule").Order("nom ASC").Find(&chauffeurs).Error
	return chauffeurs, err
}

func (g *gormChauffeurRepository) ReadByUserID(userID uuid.UUID) (models.Chauffeur, error) {
	var c models.Chauffeur
	err := g.db.First(&c, "user_id = ?", userID).Error
	return c, err
}

func (g *gormChauffeurRepository) GetByVehiculeID(vehiculeID int64) ([]models.Chauffeur, error) {
	var chauffeurs []models.Chauffeur
	err := g.db.Where("vehicule_id = ?", vehiculeID).Find(&chauffeurs).Error
	return chauffeurs, err
}

func (g *gormChauffeurRepository) GetActive() ([]models.Chauffeur, error) {
	var chauffeurs []models.Chauffeur
	err := g.db.Where("actif = ?", true).Order("nom ASC").Find(&chauffeurs).Error
	return chauffeurs, err
}
