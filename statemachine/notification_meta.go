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

package statemachine

import (
	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityWarning NotificationSeverity = "warning"
	SeverityDanger  NotificationSeverity = "danger"
)

// NotificationMeta is the display metadata for one notification type. Every
// consumer renders from this single table instead of keeping its own
// type-to-label switch.
type NotificationMeta struct {
	Label    string               `json:"label"`
	Icon     string               `json:"icon"`
	Severity NotificationSeverity `json:"severity"`
}

var notificationMeta = map[models.NotificationType]NotificationMeta{
	models.NotificationMissionAssignee:  {Label: "Mission assignée", Icon: "local_shipping", Severity: SeverityInfo},
	models.NotificationMissionAcceptee:  {Label: "Mission acceptée", Icon: "check_circle", Severity: SeveritySuccess},
	models.NotificationMissionCommencee: {Label: "Mission commencée", Icon: "play_circle", Severity: SeverityInfo},
	models.NotificationMissionTerminee:  {Label: "Mission terminée", Icon: "task_alt", Severity: SeveritySuccess},
	models.NotificationMissionRefusee:   {Label: "Mission refusée", Icon: "cancel", Severity: SeverityDanger},
	models.NotificationMissionProbleme:  {Label: "Problème signalé", Icon: "report_problem", Severity: SeverityWarning},
	models.NotificationDemandeConge:     {Label: "Demande de congé", Icon: "event_busy", Severity: SeverityInfo},
	models.NotificationCongeAccepte:     {Label: "Congé accepté", Icon: "event_available", Severity: SeveritySuccess},
	models.NotificationCongeRefuse:      {Label: "Congé refusé", Icon: "event_busy", Severity: SeverityDanger},
}

// MetaForNotification never fails: unknown types fall back to a neutral
// entry so a new backend type cannot break rendering.
func MetaForNotification(typ models.NotificationType) NotificationMeta {
	if meta, ok := notificationMeta[typ]; ok {
		return meta
	}
	return NotificationMeta{Label: string(typ), Icon: "notifications", Severity: SeverityInfo}
}
