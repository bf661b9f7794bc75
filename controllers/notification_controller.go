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

package controllers

import (
	"net/http"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service shared.NotificationService
}

func NewNotificationController(service shared.NotificationService) *NotificationController {
	return &NotificationController{service: service}
}

// List returns the authenticated user's notifications, newest first, each
// decorated with its display metadata.
func (h *NotificationController) List(ctx shared.Context) error {
	notifications, err := h.service.ListFor(actorFromContext(ctx))
	if err != nil {
		return httpError(err, "could not list notifications")
	}

	result := utils.Map(notifications, func(notification models.Notification) dtos.NotificationDTO {
		meta := statemachine.MetaForNotification(notification.Type)
		return dtos.NotificationToDTO(notification, meta.Label, meta.Icon, string(meta.Severity))
	})
	return ctx.JSON(http.StatusOK, result)
}

func (h *NotificationController) UnreadCount(ctx shared.Context) error {
	count, err := h.service.UnreadCount(actorFromContext(ctx))
	if err != nil {
		return httpError(err, "could not count notifications")
	}
	return ctx.JSON(http.StatusOK, dtos.UnreadCountDTO{Count: count})
}

func (h *NotificationController) MarkRead(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "notificationID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid notification id")
	}

	if err := h.service.MarkRead(actorFromContext(ctx), id); err != nil {
		return httpError(err, "could not mark notification as read")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (h *NotificationController) MarkAllRead(ctx shared.Context) error {
	if err := h.service.MarkAllRead(actorFromContext(ctx)); err != nil {
		return httpError(err, "could not mark notifications as read")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (h *NotificationController) Delete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "notificationID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid notification id")
	}

	if err := h.service.Delete(actorFromContext(ctx), id); err != nil {
		return httpError(err, "could not delete notification")
	}
	return ctx.NoContent(http.StatusNoContent)
}
