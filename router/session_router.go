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

// SessionRouter is the subtree that requires an authenticated user.
type SessionRouter struct {
	*echo.Group
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	authService shared.AuthService,
	rbacProvider shared.RBACProvider,
	authController *controllers.AuthController,
	notificationController *controllers.NotificationController,
) SessionRouter {
	// login is the only route that works without a token
	apiV1Router.POST("/auth/login/", authController.Login,
		middlewares.SessionMiddleware(authService, rbacProvider))

	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(authService, rbacProvider),
		middlewares.RequireSession,
	)

	sessionRouter.POST("/auth/logout/", authController.Logout)
	sessionRouter.GET("/whoami/", authController.Whoami)

	notificationRouter := sessionRouter.Group("/notifications")
	notificationRouter.GET("/", notificationController.List)
	notificationRouter.GET("/unread-count/", notificationController.UnreadCount)
	notificationRouter.PUT("/read-all/", notificationController.MarkAllRead)
	notificationRouter.PUT("/:notificationID/read/", notificationController.MarkRead)
	notificationRouter.DELETE("/:notificationID/", notificationController.Delete)

	return SessionRouter{Group: sessionRouter}
}
