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

package middlewares

import (
	"log/slog"

	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

// AccessControl guards a route with one object/action pair. Routes behind it
// must also sit behind RequireSession.
func AccessControl(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(403, "insufficient permissions")
			}

			return next(ctx)
		}
	}
}

// RequireRole short-circuits routes that are scoped to one role regardless
// of object permissions, e.g. the admin dashboard.
func RequireRole(role shared.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if shared.RoleFromUser(shared.GetUser(ctx)) != role {
				return echo.NewHTTPError(403, "insufficient permissions")
			}
			return next(ctx)
		}
	}
}
