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
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormIndisponibiliteRepository struct {
	utils.Repository[int64, models.Indisponibilite, *gorm.DB]
	db *gorm.DB
}

func NewIndisponibiliteRepository(db *gorm.DB) *gormIndisponibiliteRepository {
	return &gormIndisponibiliteRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Indisponibilite](db),
	}
}

// ReadForUpdate loads a leave request through the given transaction, with a
// row lock on postgres so concurrent decisions serialize on the row.
func (g *gormIndisponibiliteRepository) ReadForUpdate(tx shared.DB, id int64) (models.Indisponibilite, error) {
	db := g.GetDB(tx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var i models.Indisponibilite
	err := db.First(&i, "id = ?", id).Error
	return i, err
}

func (g *gormIndisponibiliteRepository) GetAll() ([]models.Indisponibilite, error) {
	var demandes []models.Indisponibilite
	err := g.db.Preload("Chauffeur").Order("created_at DESC").Find(&demandes).Error
	return demandes, err
}

func (g *gormIndisponibiliteRepository) GetByChauffeurID(chauffeurID int64) ([]models.Indisponibilite, error) {
	var demandes []models.Indisponibilite
	err := g.db.Where("chauffeur_id = ?", chauffeurID).Order("created_at DESC").Find(&demandes).Error
	return demandes, err
}

// GetPending matches the effective status: an explicit EN_ATTENTE, or a
// legacy row without statut that was never accepted.
func (g *gormIndisponibiliteRepository) GetPending() ([]models.Indisponibilite, error) {
	var demandes []models.Indisponibilite
	err := g.db.Preload("Chauffeur").
		Where("statut = ? OR (statut = '' AND acceptee = ?)", models.CongeEnAttente, false).
		Order("created_at ASC").Find(&demandes).Error
	return demandes, err
}

func (g *gormIndisponibiliteRepository) GetAcceptedOverlapping(chauffeurID int64, start, end time.Time) ([]models.Indisponibilite, error) {
	var demandes []models.Indisponibilite
	err := g.db.
		Where("chauffeur_id = ? AND date_debut <= ? AND date_fin >= ?", chauffeurID, end, start).
		Where("statut = ? OR (statut = '' AND acceptee = ?)", models.CongeAcceptee, true).
		Find(&demandes).Error
	return demandes, err
}
