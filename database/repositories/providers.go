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

package repositories

import (
	"github.com/fleetdesk-io/fleetdesk/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewMissionRepository, fx.As(new(shared.MissionRepository)))),
	fx.Provide(fx.Annotate(NewChauffeurRepository, fx.As(new(shared.ChauffeurRepository)))),
	fx.Provide(fx.Annotate(NewEmployeRepository, fx.As(new(shared.EmployeRepository)))),
	fx.Provide(fx.Annotate(NewVehiculeRepository, fx.As(new(shared.VehiculeRepository)))),
	fx.Provide(fx.Annotate(NewIndisponibiliteRepository, fx.As(new(shared.IndisponibiliteRepository)))),
	fx.Provide(fx.Annotate(NewNotificationRepository, fx.As(new(shared.NotificationRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewAccessTokenRepository, fx.As(new(shared.AccessTokenRepository)))),
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
)
