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
	"github.com/labstack/echo/v4"
)

type MissionController struct {
	service shared.MissionService
}

func NewMissionController(service shared.MissionService) *MissionController {
	return &MissionController{service: service}
}

// Create registers a new mission for the authenticated employee. An admin
// may create on behalf of any employee by passing employeId in the body.
func (h *MissionController) Create(ctx shared.Context) error {
	var req dtos.MissionCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	employe := shared.GetEmploye(ctx)
	mission, err := h.service.Create(req, employe.ID)
	if err != nil {
		return httpError(err, "could not create mission")
	}
	return ctx.JSON(http.StatusCreated, dtos.MissionToDTO(mission))
}

func (h *MissionController) Read(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	mission, err := h.service.Read(id)
	if err != nil {
		return httpError(err, "could not load mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

func (h *MissionController) Update(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	var req dtos.MissionUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	mission, err := h.service.Update(id, req)
	if err != nil {
		return httpError(err, "could not update mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

func (h *MissionController) Delete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	if err := h.service.Delete(id); err != nil {
		return httpError(err, "could not delete mission")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (h *MissionController) List(ctx shared.Context) error {
	missions, err := h.service.ListAll()
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

// ListMine returns the missions created by the authenticated employee.
func (h *MissionController) ListMine(ctx shared.Context) error {
	employe := shared.GetEmploye(ctx)
	missions, err := h.service.ListByEmploye(employe.ID)
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

// ListAssigned returns the missions assigned to the authenticated driver.
func (h *MissionController) ListAssigned(ctx shared.Context) error {
	chauffeur := shared.GetChauffeur(ctx)
	missions, err := h.service.ListByChauffeur(chauffeur.ID)
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

// ListForChauffeur returns the full mission history of one driver. Admin
// only.
func (h *MissionController) ListForChauffeur(ctx shared.Context) error {
	chauffeurID, err := shared.ParamID(ctx, "chauffeurID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeur id")
	}
	missions, err := h.service.ListByChauffeur(chauffeurID)
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

func (h *MissionController) ListPendingUnassigned(ctx shared.Context) error {
	missions, err := h.service.ListPendingUnassigned()
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

func (h *MissionController) ListWithProblems(ctx shared.Context) error {
	missions, err := h.service.ListWithProblems()
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

// ListMineWithProblems returns the authenticated employee's missions with an
// unresolved reported problem.
func (h *MissionController) ListMineWithProblems(ctx shared.Context) error {
	employe := shared.GetEmploye(ctx)
	missions, err := h.service.ListWithProblemsByEmploye(employe.ID)
	if err != nil {
		return httpError(err, "could not list missions")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionsToDTOs(missions))
}

func (h *MissionController) Accept(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	chauffeur := shared.GetChauffeur(ctx)
	mission, err := h.service.Accept(id, chauffeur.ID)
	if err != nil {
		return httpError(err, "could not accept mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

// Refuse expects the refusal reason as a plain-text body.
func (h *MissionController) Refuse(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}
	raison, err := textBody(ctx)
	if err != nil {
		return err
	}

	chauffeur := shared.GetChauffeur(ctx)
	mission, err := h.service.Refuse(id, chauffeur.ID, raison)
	if err != nil {
		return httpError(err, "could not refuse mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

func (h *MissionController) Start(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	chauffeur := shared.GetChauffeur(ctx)
	mission, err := h.service.Start(id, chauffeur.ID)
	if err != nil {
		return httpError(err, "could not start mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

func (h *MissionController) Complete(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}

	chauffeur := shared.GetChauffeur(ctx)
	mission, err := h.service.Complete(id, chauffeur.ID)
	if err != nil {
		return httpError(err, "could not complete mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

// ReportProbleme expects the problem description as a plain-text body.
func (h *MissionController) ReportProbleme(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}
	description, err := textBody(ctx)
	if err != nil {
		return err
	}

	chauffeur := shared.GetChauffeur(ctx)
	mission, err := h.service.ReportProbleme(id, chauffeur.ID, description)
	if err != nil {
		return httpError(err, "could not report problem")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

// Reassign hands the mission to the driver given by the chauffeurId query
// parameter. Admin only.
func (h *MissionController) Reassign(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}
	chauffeurID, err := shared.QueryID(ctx, "chauffeurId")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeurId")
	}

	mission, err := h.service.Reassign(id, chauffeurID)
	if err != nil {
		return httpError(err, "could not reassign mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}

// ReassignMine hands one of the authenticated employee's own missions to the
// driver given by the chauffeurId query parameter.
func (h *MissionController) ReassignMine(ctx shared.Context) error {
	id, err := shared.ParamID(ctx, "missionID")
	if err != nil {
		return echo.NewHTTPError(400, "invalid mission id")
	}
	chauffeurID, err := shared.QueryID(ctx, "chauffeurId")
	if err != nil {
		return echo.NewHTTPError(400, "invalid chauffeurId")
	}

	employe := shared.GetEmploye(ctx)
	mission, err := h.service.ReassignForEmploye(id, employe.ID, chauffeurID)
	if err != nil {
		return httpError(err, "could not reassign mission")
	}
	return ctx.JSON(http.StatusOK, dtos.MissionToDTO(mission))
}
