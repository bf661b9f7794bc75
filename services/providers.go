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
package services

import (
	"github.com/fleetdesk-io/fleetdesk/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationService)))),
	fx.Provide(fx.Annotate(NewMissionService, fx.As(new(shared.MissionService)))),
	fx.Provide(fx.Annotate(NewLeaveService, fx.As(new(shared.LeaveService)))),
	fx.Provide(fx.Annotate(NewChauffeurService, fx.As(new(shared.ChauffeurService)))),
	fx.Provide(fx.Annotate(NewEmployeService, fx.As(new(shared.EmployeService)))),
	fx.Provide(fx.Annotate(NewVehiculeService, fx.As(new(shared.VehiculeService)))),
	fx.Provide(fx.Annotate(NewAuthService, fx.As(new(shared.AuthService)))),
	fx.Provide(fx.Annotate(NewStatsService, fx.As(new(shared.StatsService)))),
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
)
