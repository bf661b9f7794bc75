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

package daemons

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/monitoring"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"go.uber.org/fx"
)

// DaemonRunner encapsulates the background job dependencies and lifecycle.
type DaemonRunner struct {
	configService             shared.ConfigService
	leaveService              shared.LeaveService
	indisponibiliteRepository shared.IndisponibiliteRepository
	notificationRepository    shared.NotificationRepository
}

func NewDaemonRunner(
	configService shared.ConfigService,
	leaveService shared.LeaveService,
	indisponibiliteRepository shared.IndisponibiliteRepository,
	notificationRepository shared.NotificationRepository,
) *DaemonRunner {
	return &DaemonRunner{
		configService:             configService,
		leaveService:              leaveService,
		indisponibiliteRepository: indisponibiliteRepository,
		notificationRepository:    notificationRepository,
	}
}

// Start initiates the background jobs. The last-run bookkeeping lives in the
// config table, so multiple instances will not repeat each other's work
// inside the gating interval.
func (runner *DaemonRunner) Start() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				monitoring.RecoverAndAlert("panic in daemon loop", r)
			}
		}()
		runner.runDaemons()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			runner.runDaemons()
		}
	}()
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

var Module = fx.Module("daemons",
	fx.Provide(fx.Annotate(NewDaemonRunner, fx.As(new(shared.DaemonRunner)))),
)
