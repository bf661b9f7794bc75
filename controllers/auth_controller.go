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
	"strings"

	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service shared.AuthService
}

func NewAuthController(service shared.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (h *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	response, err := h.service.Login(req)
	if err != nil {
		return httpError(err, "could not log in")
	}
	return ctx.JSON(http.StatusOK, response)
}

func (h *AuthController) Logout(ctx shared.Context) error {
	token := strings.TrimPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if token == "" {
		return ctx.NoContent(http.StatusNoContent)
	}

	if err := h.service.Logout(token); err != nil {
		return httpError(err, "could not log out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Whoami echoes the authenticated user.
func (h *AuthController) Whoami(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, dtos.UserToDTO(shared.GetUser(ctx)))
}

// CreateUser provisions a login. Admin only.
func (h *AuthController) CreateUser(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	user, err := h.service.CreateUser(req)
	if err != nil {
		return httpError(err, "could not create user")
	}
	return ctx.JSON(http.StatusCreated, dtos.UserToDTO(user))
}
