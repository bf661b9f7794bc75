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
)

type gormNotificationRepository struct {
	utils.Repository[int64, models.Notification, *gorm.DB]
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *gormNotificationRepository {
	return &gormNotificationRepository{
		db:         db,
		Repository: newGormRepository[int64, models.Notification](db),
	}
}

func (g *gormNotificationRepository) GetForEmploye(employeID int64) ([]models.Notification, error) {
	var notifications []models.Notification
	err := g.db.Where("employe_id = ?", employeID).Order("date_envoi DESC").Find(&notifications).Error
	return notifications, err
}

func (g *gormNotificationRepository) GetForChauffeur(chauffeurID int64) ([]models.Notification, error) {
	var notifications []models.Notification
	err := g.db.Where("chauffeur_id = ?", chauffeurID).Order("date_envoi DESC").Find(&notifications).Error
	return notifications, err
}

func (g *gormNotificationRepository) GetForAdmin() ([]models.Notification, error) {
	var notifications []models.Notification
	err := g.db.Where("for_admin = ?", true).Order("date_envoi DESC").Find(&notifications).Error
	return notifications, err
}

func (g *gormNotificationRepository) CountUnreadForEmploye(employeID int64) (int64, error) {
	var count int64
	err := g.db.Model(&models.Notification{}).
		Where("employe_id = ? AND lue = ?", employeID, false).Count(&count).Error
	return count, err
}

func (g *gormNotificationRepository) CountUnreadForChauffeur(chauffeurID int64) (int64, error) {
	var count int64
	err := g.db.Model(&models.Notification{}).
		Where("chauffeur_id = ? AND lue = ?", chauffeurID, false).Count(&count).Error
	return count, err
}

func (g *gormNotificationRepository) CountUnreadForAdmin() (int64, error) {
	var count int64
	err := g.db.Model(&models.Notification{}).
		Where("for_admin = ? AND lue = ?", true, false).Count(&count).Error
	return count, err
}

func (g *gormNotificationRepository) MarkRead(tx shared.DB, id int64) error {
	return g.GetDB(tx).Model(&models.Notification{}).Where("id = ?", id).Update("lue", true).Error
}

func (g *gormNotificationRepository) MarkAllReadForEmploye(tx shared.DB, employeID int64) error {
	return g.GetDB(tx).Model(&models.Notification{}).
		Where("employe_id = ? AND lue = ?", employeID, false).Update("lue", true).Error
}

func (g *gormNotificationRepository) MarkAllReadForChauffeur(tx shared.DB, chauffeurID int64) error {
	return g.GetDB(tx).Model(&models.Notification{}).
		Where("chauffeur_id = ? AND lue = ?", chauffeurID, false).Update("lue", true).Error
}

func (g *gormNotificationRepository) MarkAllReadForAdmin(tx shared.DB) error {
	return g.GetDB(tx).Model(&models.Notification{}).
		Where("for_admin = ? AND lue = ?", true, false).Update("lue", true).Error
}

// DeleteReadOlderThan removes read notifications past the retention window.
func (g *gormNotificationRepository) DeleteReadOlderThan(tx shared.DB, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := g.GetDB(tx).
		Where("lue = ? AND date_envoi < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
