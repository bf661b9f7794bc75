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

type MissionRouter struct {
	*echo.Group
}

func NewMissionRouter(
	sessionRouter SessionRouter,
	missionController *controllers.MissionController,
	statsController *controllers.StatsController,
	chauffeurRepository shared.ChauffeurRepository,
	employeRepository shared.EmployeRepository,
) MissionRouter {
	missionRouter := sessionRouter.Group.Group("/missions")

	// reads are shared by every role
	read := middlewares.AccessControl(shared.ObjectMission, shared.ActionRead)
	missionRouter.GET("/", missionController.List, read, middlewares.RequireRole(shared.RoleAdmin))
	missionRouter.GET("/:missionID/", missionController.Read, read)
	missionRouter.GET("/pending-unassigned/", missionController.ListPendingUnassigned, read)
	missionRouter.GET("/with-problems/", missionController.ListWithProblems, read, middlewares.RequireRole(shared.RoleAdmin))

	// employee-side dispatch
	update := middlewares.AccessControl(shared.ObjectMission, shared.ActionUpdate)
	employeRouter := missionRouter.Group("", middlewares.EmployeContext(employeRepository))
	employeRouter.POST("/", missionController.Create, middlewares.AccessControl(shared.ObjectMission, shared.ActionCreate))
	employeRouter.GET("/mine/", missionController.ListMine, read)
	employeRouter.GET("/mine/with-problems/", missionController.ListMineWithProblems, read)
	employeRouter.GET("/stats/", statsController.ForEmploye, read)
	employeRouter.POST("/mine/:missionID/reassigner/", missionController.ReassignMine, update)

	// driver-side lifecycle - the acting chauffeur comes from the session
	chauffeurRouter := missionRouter.Group("", middlewares.ChauffeurContext(chauffeurRepository))
	chauffeurRouter.GET("/assigned/", missionController.ListAssigned, read)
	chauffeurRouter.GET("/assigned/stats/", statsController.ForChauffeur, read)
	chauffeurRouter.POST("/:missionID/accepter/", missionController.Accept, update)
	chauffeurRouter.POST("/:missionID/refuser/", missionController.Refuse, update)
	chauffeurRouter.POST("/:missionID/commencer/", missionController.Start, update)
	chauffeurRouter.POST("/:missionID/terminer/", missionController.Complete, update)
	chauffeurRouter.POST("/:missionID/signaler-probleme/", missionController.ReportProbleme, update)

	// administrative operations
	admin := middlewares.RequireRole(shared.RoleAdmin)
	missionRouter.GET("/chauffeur/:chauffeurID/", missionController.ListForChauffeur, read, admin)
	missionRouter.POST("/:missionID/reassigner/", missionController.Reassign, admin)
	missionRouter.PUT("/:missionID/", missionController.Update, middlewares.AccessControl(shared.ObjectMission, shared.ActionUpdate))
	missionRouter.DELETE("/:missionID/", missionController.Delete, middlewares.AccessControl(shared.ObjectMission, shared.ActionDelete))

	return MissionRouter{Group: missionRouter}
}
