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

package router

import (
	"github.com/fleetdesk-io/fleetdesk/controllers"
	"github.com/fleetdesk-io/fleetdesk/middlewares"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

type CongeRouter struct {
	*echo.Group
}

func NewCongeRouter(
	sessionRouter SessionRouter,
	congeController *controllers.CongeController,
	chauffeurRepository shared.ChauffeurRepository,
) CongeRouter {
	congeRouter := sessionRouter.Group.Group("/demandes-conge")

	read := middlewares.AccessControl(shared.ObjectConge, shared.ActionRead)
	congeRouter.GET("/", congeController.List, read, middlewares.RequireRole(shared.RoleAdmin))
	congeRouter.GET("/en-attente/", congeController.ListPending, read, middlewares.RequireRole(shared.RoleAdmin))
	congeRouter.GET("/:congeID/", congeController.Read, read)

	// drivers submit and list their own requests
	chauffeurRouter := congeRouter.Group("", middlewares.ChauffeurContext(chauffeurRepository))
	chauffeurRouter.POST("/", congeController.Create, middlewares.AccessControl(shared.ObjectConge, shared.ActionCreate))
	chauffeurRouter.GET("/mine/", congeController.ListMine, read)

	// decisions are admin territory
	decide := middlewares.AccessControl(shared.ObjectConge, shared.ActionUpdate)
	congeRouter.POST("/:congeID/accepter/", congeController.Accept, decide, middlewares.RequireRole(shared.RoleAdmin))
	congeRouter.POST("/:congeID/refuser/", congeController.Refuse, decide, middlewares.RequireRole(shared.RoleAdmin))

	return CongeRouter{Group: congeRouter}
}
