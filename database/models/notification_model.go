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

type NotificationType string

const (
	NotificationMissionAssignee  NotificationType = "MISSION_ASSIGNEE"
	NotificationMissionAcceptee  NotificationType = "MISSION_ACCEPTEE"
	NotificationMissionCommencee NotificationType = "MISSION_COMMENCEE"
	NotificationMissionTerminee  NotificationType = "MISSION_TERMINEE"
	NotificationMissionRefusee   NotificationType = "MISSION_REFUSEE"
	NotificationMissionProbleme  NotificationType = "MISSION_PROBLEME"
	NotificationDemandeConge     NotificationType = "DEMANDE_CONGE"
	NotificationCongeAccepte     NotificationType = "CONGE_ACCEPTE"
	NotificationCongeRefuse      NotificationType = "CONGE_REFUSE"
)

// Notification is a fire-and-forget message to one actor about a state
// change. Exactly one of the recipient links is set. The optional mission /
// indisponibilite links provide rendering context only.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	Type      NotificationType `json:"type" gorm:"not null;index"`
	Message   string           `json:"message" gorm:"type:text;not null"`
	DateEnvoi time.Time        `json:"dateEnvoi" gorm:"not null"`
	Lue       bool             `json:"lue" gorm:"not null;default:false"`

	EmployeID   *int64     `json:"employeId"`
	Employe     *Employe   `json:"employe,omitempty" gorm:"foreignKey:EmployeID"`
	ChauffeurID *int64     `json:"chauffeurId"`
	Chauffeur   *Chauffeur `json:"chauffeur,omitempty" gorm:"foreignKey:ChauffeurID"`
	// admin notifications are broadcast, they carry no per-admin link
	ForAdmin bool `json:"-" gorm:"not null;default:false;index"`

	MissionID         *int64           `json:"missionId"`
	Mission           *Mission         `json:"mission,omitempty" gorm:"foreignKey:MissionID"`
	IndisponibiliteID *int64           `json:"indisponibiliteId"`
	Indisponibilite   *Indisponibilite `json:"indisponibilite,omitempty" gorm:"foreignKey:IndisponibiliteID"`
}

func (n Notification) TableName() string {
	return "notifications"
}
