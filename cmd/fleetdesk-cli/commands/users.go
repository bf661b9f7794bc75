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

package commands

import (
	"log/slog"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/database/repositories"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/spf13/cobra"
)

func NewUsersCommand() *cobra.Command {
	users := cobra.Command{
		Use:   "users",
		Short: "Manage login accounts",
	}

	users.AddCommand(newCreateAdminCommand())
	return &users
}

func newCreateAdminCommand() *cobra.Command {
	createAdmin := cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			user := models.User{
				Email: email,
				Role:  models.RoleAdmin,
			}
			if err := user.SetPassword(password); err != nil {
				slog.Error("could not hash password", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(db)
			if err := userRepository.Create(nil, &user); err != nil {
				slog.Error("could not create admin user", "err", err)
				return
			}

			slog.Info("created admin user", "email", email, "id", user.ID)
		},
	}

	createAdmin.Flags().String("email", "", "email address of the new admin")
	createAdmin.Flags().String("password", "", "password of the new admin")
	createAdmin.MarkFlagRequired("email")    // nolint
	createAdmin.MarkFlagRequired("password") // nolint

	return &createAdmin
}
