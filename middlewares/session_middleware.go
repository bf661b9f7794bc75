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
	"strings"

	"github.com/fleetdesk-io/fleetdesk/accesscontrol"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// SessionMiddleware resolves the bearer token into a user session. An
// unauthenticated request still passes through with NoSession - public
// routes decide for themselves.
func SessionMiddleware(authService shared.AuthService, rbacProvider shared.RBACProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			user, err := authService.VerifyToken(token)
			if err != nil {
				slog.Warn("could not verify access token", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			rbac := rbacProvider.GetRBAC()
			// the user row is the source of truth for the role - mirror it
			// into the enforcer so permission checks see the current role
			if err := rbac.GrantRole(user.ID.String(), shared.RoleFromUser(user)); err != nil {
				return echo.NewHTTPError(500, "could not establish permissions").WithInternal(err)
			}

			shared.SetUser(ctx, user)
			shared.SetRBAC(ctx, rbac)
			shared.SetSession(ctx, accesscontrol.NewSession(user.ID.String(), []string{string(shared.RoleFromUser(user))}))
			return next(ctx)
		}
	}
}

// RequireSession rejects unauthenticated requests.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if shared.GetSession(ctx).GetUserID() == "" {
			return echo.NewHTTPError(401, "authentication required")
		}
		return next(ctx)
	}
}
