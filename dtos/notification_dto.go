package dtos

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type NotificationDTO struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	DateEnvoi time.Time `json:"dateEnvoi"`
	Lue       bool      `json:"lue"`

	MissionID         *int64 `json:"missionId,omitempty"`
	IndisponibiliteID *int64 `json:"indisponibiliteId,omitempty"`

	// presentation metadata resolved from the shared type table
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Severity string `json:"severity"`
}

func NotificationToDTO(n models.Notification, label, icon, severity string) NotificationDTO {
	return NotificationDTO{
		ID:                n.ID,
		Type:              string(n.Type),
		Message:           n.Message,
		DateEnvoi:         n.DateEnvoi,
		Lue:               n.Lue,
		MissionID:         n.MissionID,
		IndisponibiliteID: n.IndisponibiliteID,
		Label:             label,
		Icon:              icon,
		Severity:          severity,
	}
}

type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
