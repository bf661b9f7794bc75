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
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

// ChauffeurContext loads the driver profile linked to the authenticated
// user. Routes acting "as a driver" cannot work without it.
func ChauffeurContext(chauffeurRepository shared.ChauffeurRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			user := shared.GetUser(ctx)
			if user.ChauffeurID == nil {
				return echo.NewHTTPError(403, "no chauffeur profile linked to this account")
			}

			chauffeur, err := chauffeurRepository.Read(*user.ChauffeurID)
			if err != nil {
				return echo.NewHTTPError(404, "chauffeur profile not found").WithInternal(err)
			}

			shared.SetChauffeur(ctx, chauffeur)
			return next(ctx)
		}
	}
}

// EmployeContext loads the employee profile linked to the authenticated
// user. Admins without a profile of their own pass with the employeId query
// parameter when creating on behalf of someone.
func EmployeContext(employeRepository shared.EmployeRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			user := shared.GetUser(ctx)

			if user.EmployeID != nil {
				employe, err := employeRepository.Read(*user.EmployeID)
				if err != nil {
					return echo.NewHTTPError(404, "employe profile not found").WithInternal(err)
				}
				shared.SetEmploye(ctx, employe)
				return next(ctx)
			}

			if id, err := shared.QueryID(ctx, "employeId"); err == nil {
				employe, err := employeRepository.Read(id)
				if err != nil {
					return echo.NewHTTPError(404, "employe not found").WithInternal(err)
				}
				shared.SetEmploye(ctx, employe)
				return next(ctx)
			}

			return echo.NewHTTPError(403, "no employe profile linked to this account")
		}
	}
}
