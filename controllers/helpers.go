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
	"errors"
	"io"
	"strings"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// httpError maps domain errors onto HTTP status codes. Services already
// return *echo.HTTPError for transport-level conditions; everything else is
// translated here.
func httpError(err error, fallback string) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var validationErr *statemachine.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(400, validationErr.Error()).WithInternal(err)
	}

	var transitionErr *statemachine.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return echo.NewHTTPError(409, transitionErr.Error()).WithInternal(err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	}

	return echo.NewHTTPError(500, fallback).WithInternal(err)
}

// textBody reads a small plain-text request body, e.g. a refusal reason.
func textBody(ctx shared.Context) (string, error) {
	b, err := io.ReadAll(io.LimitReader(ctx.Request().Body, 4096))
	if err != nil {
		return "", echo.NewHTTPError(400, "could not read request body").WithInternal(err)
	}
	return strings.TrimSpace(string(b)), nil
}

// actorFromContext derives the notification inbox of the authenticated user.
func actorFromContext(ctx shared.Context) shared.NotificationActor {
	user := shared.GetUser(ctx)
	return shared.NotificationActor{
		Admin:       user.Role == models.RoleAdmin,
		EmployeID:   user.EmployeID,
		ChauffeurID: user.ChauffeurID,
	}
}
