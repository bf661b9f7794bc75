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
package services

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/monitoring"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"gorm.io/gorm"
)

type notificationService struct {
	notificationRepository shared.NotificationRepository
}

func NewNotificationService(notificationRepository shared.NotificationRepository) *notificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
	}
}

func (s *notificationService) ListFor(actor shared.NotificationActor) ([]models.Notification, error) {
	switch {
	case actor.Admin:
		return s.notificationRepository.GetForAdmin()
	case actor.EmployeID != nil:
		return s.notificationRepository.GetForEmploye(*actor.EmployeID)
	case actor.ChauffeurID != nil:
		return s.notificationRepository.GetForChauffeur(*actor.ChauffeurID)
	}
	return []models.Notification{}, nil
}

func (s *notificationService) UnreadCount(actor shared.NotificationActor) (int64, error) {
	switch {
	case actor.Admin:
		return s.notificationRepository.CountUnreadForAdmin()
	case actor.EmployeID != nil:
		return s.notificationRepository.CountUnreadForEmploye(*actor.EmployeID)
	case actor.ChauffeurID != nil:
		return s.notificationRepository.CountUnreadForChauffeur(*actor.ChauffeurID)
	}
	return 0, nil
}

// readOwned loads the notification and checks it was addressed to the acting
// user. Someone else's notification is indistinguishable from a missing one.
func (s *notificationService) readOwned(actor shared.NotificationActor, id int64) (models.Notification, error) {
	notification, err := s.notificationRepository.Read(id)
	if err != nil {
		return models.Notification{}, err
	}
	switch {
	case actor.Admin && notification.ForAdmin:
		return notification, nil
	case actor.EmployeID != nil && notification.EmployeID != nil && *notification.EmployeID == *actor.EmployeID:
		return notification, nil
	case actor.ChauffeurID != nil && notification.ChauffeurID != nil && *notification.ChauffeurID == *actor.ChauffeurID:
		return notification, nil
	}
	return models.Notification{}, gorm.ErrRecordNotFound
}

func (s *notificationService) MarkRead(actor shared.NotificationActor, id int64) error {
	notification, err := s.readOwned(actor, id)
	if err != nil {
		return err
	}
	return s.notificationRepository.MarkRead(nil, notification.ID)
}

func (s *notificationService) MarkAllRead(actor shared.NotificationActor) error {
	switch {
	case actor.Admin:
		return s.notificationRepository.MarkAllReadForAdmin(nil)
	case actor.EmployeID != nil:
		return s.notificationRepository.MarkAllReadForEmploye(nil, *actor.EmployeID)
	case actor.ChauffeurID != nil:
		return s.notificationRepository.MarkAllReadForChauffeur(nil, *actor.ChauffeurID)
	}
	return nil
}

func (s *notificationService) Delete(actor shared.NotificationActor, id int64) error {
	notification, err := s.readOwned(actor, id)
	if err != nil {
		return err
	}
	return s.notificationRepository.Delete(nil, notification.ID)
}

func (s *notificationService) PersistNotices(tx shared.DB, notices []statemachine.Notice, missionID *int64, indisponibiliteID *int64) error {
	if len(notices) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.Notification, len(notices))
	for i, notice := range notices {
		rows[i] = models.Notification{
			Type:              notice.Type,
			Message:           notice.Message,
			DateEnvoi:         now,
			EmployeID:         notice.ToEmploye,
			ChauffeurID:       notice.ToChauffeur,
			ForAdmin:          notice.ToAdmin,
			MissionID:         missionID,
			IndisponibiliteID: indisponibiliteID,
		}
	}

	if err := s.notificationRepository.CreateBatch(tx, rows); err != nil {
		return err
	}
	monitoring.NotificationsFanoutTotal.Add(float64(len(rows)))
	return nil
}
