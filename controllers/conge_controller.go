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

type CongeController struct {
	service shared.LeaveService
}

func NewCongeController(service shared.LeaveService) *CongeController {
	return &CongeController{service: service}
}

func congesToDTOs(leaves []models.Indisponibilite) []dtos.CongeDTO {
	return utils.Map(leaves, func(leave models.Indisponibilite) dtos.CongeDTO {
		return dtos.CongeToDTO(leave, statemachine.EffectiveLeaveStatus(leave))
	})
}

// Create registers a leave request for the authenticated driver.
func (h *CongeController) Create(ctx shared.Context) error {
	var req dtos.CongeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	chauffeur := shared.GetChauffeur(ctx)
	leave, err := h.service.Create(req, chauffeur.ID)
	if err != nil {
		return httpError(err, "could not create leave request")
	}
	return ctx.JSON(http.StatusCreated, dtos.CongeToDTO(leave, statemachine.EffectiveLeaveStatus(leave)))
}

func (h *CongeController) Read(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "congeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid conge id")
	}

	leave, err := h.service.Read(id)
	if err != nil {
		return httpError(err, "could not load leave request")
	}
	return ctx.JSON(http.StatusOK, dtos.CongeToDTO(leave, statemachine.EffectiveLeaveStatus(leave)))
}

func (h *CongeController) List(ctx shared.Context) error {
	leaves, err := h.service.ListAll()
	if err != nil {
		return httpError(err, "could not list leave requests")
	}
	return ctx.JSON(http.StatusOK, congesToDTOs(leaves))
}

func (h *CongeController) ListPending(ctx shared.Context) error {
	leaves, err := h.service.ListPending()
	if err != nil {
		return httpError(err, "could not list leave requests")
	}
	return ctx.JSON(http.StatusOK, congesToDTOs(leaves))
}

// ListMine returns the leave requests of the authenticated driver.
func (h *CongeController) ListMine(ctx shared.Context) error {
	chauffeur := shared.GetChauffeur(ctx)
	leaves, err := h.service.ListByChauffeur(chauffeur.ID)
	if err != nil {
		return httpError(err, "could not list leave requests")
	}
	return ctx.JSON(http.StatusOK, congesToDTOs(leaves))
}

func (h *CongeController) Accept(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "congeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid conge id")
	}

	leave, err := h.service.Accept(id)
	if err != nil {
		return httpError(err, "could not accept leave request")
	}
	return ctx.JSON(http.StatusOK, dtos.CongeToDTO(leave, statemachine.EffectiveLeaveStatus(leave)))
}

// Refuse expects the refusal reason as a plain-text body.
func (h *CongeController) Refuse(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "congeID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid conge id")
	}
	raison, err := textBody(ctx)
	if err != nil {
		return err
	}

	leave, err := h.service.Refuse(id, raison)
	if err != nil {
		return httpError(err, "could not refuse leave request")
	}
	return ctx.JSON(http.StatusOK, dtos.CongeToDTO(leave, statemachine.EffectiveLeaveStatus(leave)))
}
