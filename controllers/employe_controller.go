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

	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/labstack/echo/v4"
)

type EmployeController struct {
	service shared.EmployeService
}

func NewEmployeController(service shared.EmployeService) *EmployeController {
	return &EmployeController{service: service}
}

func (h *EmployeController) Create(ctx shared.Context) error {
	var req dtos.EmployeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	employe, err := h.service.Create(req)
	if err != nil {
		return httpError(err, "could not create employe")
	}
	return ctx.JSON(http.StatusCreated, dtos.EmployeToDTO(employe))
}

func (h *EmployeController) Read(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "employeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid employe id")
	}

	employe, err := h.service.Read(id)
	if err != nil {
		return httpError(err, "could not load employe")
	}
	return ctx.JSON(http.StatusOK, dtos.EmployeToDTO(employe))
}

func (h *EmployeController) Update(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "employeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid employe id")
	}

	var req dtos.EmployeUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	employe, err := h.service.Update(id, req)
	if err != nil {
		return httpError(err, "could not update employe")
	}
	return ctx.JSON(http.StatusOK, dtos.EmployeToDTO(employe))
}

func (h *EmployeController) Delete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "employeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid employe id")
	}

	if err := h.service.Delete(id); err != nil {
		return httpError(err, "could not delete employe")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (h *EmployeController) List(ctx shared.Context) error {
	employes, err := h.service.ListAll()
	if err != nil {
		return httpError(err, "could not list employes")
	}

	return ctx.JSON(http.StatusOK, utils.Map(employes, dtos.EmployeToDTO))
}
