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

	"github.com/fleetdesk-io/fleetdesk/shared"
)

type StatsController struct {
	service shared.StatsService
}

func NewStatsController(service shared.StatsService) *StatsController {
	return &StatsController{service: service}
}

func (h *StatsController) AdminDashboard(ctx shared.Context) error {
	stats, err := h.service.AdminDashboard()
	if err != nil {
		return httpError(err, "could not compute dashboard stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (h *StatsController) ForEmploye(ctx shared.Context) error {
	employe := shared.GetEmploye(ctx)
	stats, err := h.service.ForEmploye(employe.ID)
	if err != nil {
		return httpError(err, "could not compute stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (h *StatsController) ForChauffeur(ctx shared.Context) error {
	chauffeur := shared.GetChauffeur(ctx)
	stats, err := h.service.ForChauffeur(chauffeur.ID)
	if err != nil {
		return httpError(err, "could not compute stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}
