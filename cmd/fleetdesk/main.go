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

package main

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/fleetdesk-io/fleetdesk/accesscontrol"
	"github.com/fleetdesk-io/fleetdesk/config"
	"github.com/fleetdesk-io/fleetdesk/controllers"
	"github.com/fleetdesk-io/fleetdesk/daemons"
	"github.com/fleetdesk-io/fleetdesk/database"
	"github.com/fleetdesk-io/fleetdesk/database/repositories"
	"github.com/fleetdesk-io/fleetdesk/middlewares"
	"github.com/fleetdesk-io/fleetdesk/router"
	"github.com/fleetdesk-io/fleetdesk/services"
	"github.com/fleetdesk-io/fleetdesk/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(err)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(middlewares.Server),
		accesscontrol.Module,
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,
		daemons.Module,

		fx.Invoke(func(rbacProvider shared.RBACProvider) error {
			return shared.BootstrapRBAC(rbacProvider.GetRBAC())
		}),

		// invoking the routers registers their routes on the echo instance
		fx.Invoke(func(sessionRouter router.SessionRouter) {}),
		fx.Invoke(func(missionRouter router.MissionRouter) {}),
		fx.Invoke(func(fleetRouter router.FleetRouter) {}),
		fx.Invoke(func(congeRouter router.CongeRouter) {}),

		fx.Invoke(func(runner shared.DaemonRunner) {
			runner.Start()
		}),

		fx.Invoke(startServer),
	).Run()
}

func startServer(lc fx.Lifecycle, server *echo.Echo, pool *pgxpool.Pool) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := server.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}

			go func() {
				if err := server.Start(":8080"); err != nil {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return server.Shutdown(ctx)
		},
	})
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          config.Version,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("failed to init sentry", "err", err)
	}
}
