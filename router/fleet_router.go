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

// FleetRouter mounts the master-data subtrees: drivers, employees and
// vehicles.
type FleetRouter struct {
	*echo.Group
}

func NewFleetRouter(
	sessionRouter SessionRouter,
	chauffeurController *controllers.ChauffeurController,
	employeController *controllers.EmployeController,
	vehiculeController *controllers.VehiculeController,
	authController *controllers.AuthController,
	statsController *controllers.StatsController,
) FleetRouter {
	admin := middlewares.RequireRole(shared.RoleAdmin)

	chauffeurRouter := sessionRouter.Group.Group("/chauffeurs")
	chauffeurRouter.GET("/", chauffeurController.List, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionRead))
	chauffeurRouter.GET("/disponibles/", chauffeurController.ListAvailable, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionRead))
	chauffeurRouter.GET("/:chauffeurID/", chauffeurController.Read, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionRead))
	chauffeurRouter.POST("/", chauffeurController.Create, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionCreate))
	chauffeurRouter.PUT("/:chauffeurID/", chauffeurController.Update, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionUpdate))
	chauffeurRouter.DELETE("/:chauffeurID/", chauffeurController.Delete, middlewares.AccessControl(shared.ObjectChauffeur, shared.ActionDelete))

	employeRouter := sessionRouter.Group.Group("/employes")
	employeRouter.GET("/", employeController.List, middlewares.AccessControl(shared.ObjectEmploye, shared.ActionRead))
	employeRouter.GET("/:employeID/", employeController.Read, middlewares.AccessControl(shared.ObjectEmploye, shared.ActionRead))
	employeRouter.POST("/", employeController.Create, middlewares.AccessControl(shared.ObjectEmploye, shared.ActionCreate))
	employeRouter.PUT("/:employeID/", employeController.Update, middlewares.AccessControl(shared.ObjectEmploye, shared.ActionUpdate))
	employeRouter.DELETE("/:employeID/", employeController.Delete, middlewares.AccessControl(shared.ObjectEmploye, shared.ActionDelete))

	vehiculeRouter := sessionRouter.Group.Group("/vehicules")
	vehiculeRouter.GET("/", vehiculeController.List, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionRead))
	vehiculeRouter.GET("/disponibles/", vehiculeController.ListAvailable, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionRead))
	vehiculeRouter.GET("/:vehiculeID/", vehiculeController.Read, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionRead))
	vehiculeRouter.POST("/", vehiculeController.Create, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionCreate))
	vehiculeRouter.PUT("/:vehiculeID/", vehiculeController.Update, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionUpdate))
	vehiculeRouter.DELETE("/:vehiculeID/", vehiculeController.Delete, middlewares.AccessControl(shared.ObjectVehicule, shared.ActionDelete))

	// admin-only user provisioning and dashboard
	sessionRouter.POST("/users/", authController.CreateUser, admin)
	sessionRouter.GET("/dashboard/", statsController.AdminDashboard, admin)

	return FleetRouter{Group: sessionRouter.Group}
}
