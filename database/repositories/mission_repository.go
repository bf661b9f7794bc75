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
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormMissionRepository struct {
	utils.Repository[int64, models.Mission, *gorm.DB]
	db *gorm.DB
}

func NewMissionRepository(db *gorm.DB) *gormMissionRepository {
	return &gormMissionRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Mission](db),
	}
}

func (g *gormMissionRepository) ReadWithRelations(id int64) (models.Mission, error) {
	var m models.Mission
	err := g.db.Preload("Employe").Preload("Chauffeur").Preload("Vehicule").First(&m, "id = ?", id).Error
	return m, err
}

// ReadForUpdate loads a mission through the given transaction, taking a row
// lock on postgres so concurrent transitions serialize on the row. sqlite has
// no FOR UPDATE; its writers serialize on the database anyway.
func (g *gormMissionRepository) ReadForUpdate(tx shared.DB, id int64) (models.Mission, error) {
	db := g.GetDB(tx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m models.Mission
	err := db.First(&m, "id = ?", id).Error
	return m, err
}

func (g *gormMissionRepository) GetAll() ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Employe").Preload("Chauffeur").Preload("Vehicule").
		Order("date_heure DESC").Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) GetByEmployeID(employeID int64) ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Chauffeur").Preload("Vehicule").
		Where("employe_id = ?", employeID).Order("date_heure DESC").Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) GetByChauffeurID(chauffeurID int64) ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Employe").Preload("Vehicule").
		Where("chauffeur_id = ?", chauffeurID).Order("date_heure DESC").Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) GetPendingUnassigned() ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Employe").
		Where("etat = ? AND chauffeur_id IS NULL", models.EtatEnAttente).
		Order("date_heure ASC").Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) GetWithOpenProblems() ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Employe").Preload("Chauffeur").
		Where("probleme <> '' AND etat NOT IN ?", []models.EtatMission{models.EtatTerminee, models.EtatRefusee}).
		Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) GetWithOpenProblemsByEmploye(employeID int64) ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Preload("Chauffeur").
		Where("employe_id = ? AND probleme <> '' AND etat NOT IN ?", employeID,
			[]models.EtatMission{models.EtatTerminee, models.EtatRefusee}).
		Find(&missions).Error
	return missions, err
}

func (g *gormMissionRepository) CountByChauffeurAndStates(chauffeurID int64, etats []models.EtatMission) (int64, error) {
	var count int64
	err := g.db.Model(&models.Mission{}).
		Where("chauffeur_id = ? AND etat IN ?", chauffeurID, etats).
		Count(&count).Error
	return count, err
}

func (g *gormMissionRepository) GetActiveByVehiculeID(vehiculeID int64) ([]models.Mission, error) {
	var missions []models.Mission
	err := g.db.Where("vehicule_id = ? AND etat IN ?", vehiculeID,
		[]models.EtatMission{models.EtatCommencee, models.EtatEnCours}).Find(&missions).Error
	return missions, err
}

// UnassignPendingFromChauffeur returns all still-pending missions of a
// driver to the unassigned pool. Used when a driver is deleted.
func (g *gormMissionRepository) UnassignPendingFromChauffeur(tx shared.DB, chauffeurID int64) (int64, error) {
	result := g.GetDB(tx).Model(&models.Mission{}).
		Where("chauffeur_id = ? AND etat = ?", chauffeurID, models.EtatEnAttente).
		Updates(map[string]any{"chauffeur_id": nil, "acceptee": false})
	return result.RowsAffected, result.Error
}
