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

type VehiculeController struct {
	service shared.VehiculeService
}

func NewVehiculeController(service shared.VehiculeService) *VehiculeController {
	return &VehiculeController{service: service}
}

func (h *VehiculeController) Create(ctx shared.Context) error {
	var req dtos.VehiculeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	vehicule, err := h.service.Create(req)
	if err != nil {
		return httpError(err, "could not create vehicule")
	}
	return ctx.JSON(http.StatusCreated, dtos.VehiculeToDTO(vehicule))
}

func (h *VehiculeController) Read(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "vehiculeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid vehicule id")
	}

	vehicule, err := h.service.Read(id)
	if err != nil {
		return httpError(err, "could not load vehicule")
	}
	return ctx.JSON(http.StatusOK, dtos.VehiculeToDTO(vehicule))
}

func (h *VehiculeController) Update(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "vehiculeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid vehicule id")
	}

	var req dtos.VehiculeUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	vehicule, err := h.service.Update(id, req)
	if err != nil {
		return httpError(err, "could not update vehicule")
	}
	return ctx.JSON(http.StatusOK, dtos.VehiculeToDTO(vehicule))
}

func (h *VehiculeController) Delete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "vehiculeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid vehicule id")
	}

	if err := h.service.Delete(id); err != nil {
		return httpError(err, "could not delete vehicule")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// List returns every vehicle decorated with its display status.
func (h *VehiculeController) List(ctx shared.Context) error {
	vehicules, err := h.service.ListAll()
	if err != nil {
		return httpError(err, "could not list vehicules")
	}
	return ctx.JSON(http.StatusOK, vehicules)
}

func (h *VehiculeController) ListAvailable(ctx shared.Context) error {
	vehicules, err := h.service.ListAvailable()
	if err != nil {
		return httpError(err, "could not list vehicules")
	}

	return ctx.JSON(http.StatusOK, utils.Map(vehicules, dtos.VehiculeToDTO))
}
