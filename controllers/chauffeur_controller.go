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
	"github.com/labstack/echo/v4"
)

type ChauffeurController struct {
	service shared.ChauffeurService
}

func NewChauffeurController(service shared.ChauffeurService) *ChauffeurController {
	return &ChauffeurController{service: service}
}

func (h *ChauffeurController) Create(ctx shared.Context) error {
	var req dtos.ChauffeurCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	chauffeur, err := h.service.Create(req)
	if err != nil {
		return httpError(err, "could not create chauffeur")
	}
	return ctx.JSON(http.StatusCreated, dtos.ChauffeurToDTO(chauffeur))
}

func (h *ChauffeurController) Read(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "chauffeurID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeur id")
	}

	chauffeur, err := h.service.Read(id)
	if err != nil {
		return httpError(err, "could not load chauffeur")
	}

	dto := dtos.ChauffeurToDTO(chauffeur)
	if statut, err := h.service.Availability(id); err == nil {
		dto.Statut = string(statut)
	}
	return ctx.JSON(http.StatusOK, dto)
}

func (h *ChauffeurController) Update(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "chauffeurID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeur id")
	}

	var req dtos.ChauffeurUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	chauffeur, err := h.service.Update(id, req)
	if err != nil {
		return httpError(err, "could not update chauffeur")
	}
	return ctx.JSON(http.StatusOK, dtos.ChauffeurToDTO(chauffeur))
}

// Delete removes a driver, releasing pending missions first. Responds 409
// while the driver still has a mission in progress.
func (h *ChauffeurController) Delete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "chauffeurID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeur id")
	}

	result, err := h.service.Delete(id)
	if err != nil {
		return httpError(err, "could not delete chauffeur")
	}
	return ctx.JSON(http.StatusOK, result)
}

func (h *ChauffeurController) List(ctx shared.Context) error {
	chauffeurs, err := h.service.ListAll()
	if err != nil {
		return httpError(err, "could not list chauffeurs")
	}
	return ctx.JSON(http.StatusOK, chauffeursToDTOs(h, chauffeurs))
}

func (h *ChauffeurController) ListAvailable(ctx shared.Context) error {
	chauffeurs, err := h.service.ListAvailable()
	if err != nil {
		return httpError(err, "could not list chauffeurs")
	}
	return ctx.JSON(http.StatusOK, chauffeursToDTOs(h, chauffeurs))
}

func chauffeursToDTOs(h *ChauffeurController, chauffeurs []models.Chauffeur) []dtos.ChauffeurDTO {
	result := make([]dtos.ChauffeurDTO, len(chauffeurs))
	for i, chauffeur := range chauffeurs {
		result[i] = dtos.ChauffeurToDTO(chauffeur)
		if statut, err := h.service.Availability(chauffeur.ID); err == nil {
			result[i].Statut = string(statut)
		}
	}
	return result
}
