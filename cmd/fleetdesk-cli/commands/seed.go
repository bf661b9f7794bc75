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
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/database/repositories"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo fleet data",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			vehiculeRepository := repositories.NewVehiculeRepository(db)
			chauffeurRepository := repositories.NewChauffeurRepository(db)
			employeRepository := repositories.NewEmployeRepository(db)

			vehicules := []models.Vehicule{
				{Immatriculation: "AB-123-CD", Marque: "Renault", Modele: "Master", Capacite: 1500, Disponible: true},
				{Immatriculation: "EF-456-GH", Marque: "Peugeot", Modele: "Boxer", Capacite: 1200, Disponible: true},
				{Immatriculation: "IJ-789-KL", Marque: "Citroën", Modele: "Jumpy", Capacite: 1000, Disponible: true},
			}
			for i := range vehicules {
				if err := vehiculeRepository.Create(nil, &vehicules[i]); err != nil {
					slog.Error("could not create vehicule", "immatriculation", vehicules[i].Immatriculation, "err", err)
					return
				}
			}

			chauffeurs := []models.Chauffeur{
				{Nom: "Martin", Prenom: "Luc", Telephone: "0601020304", Actif: true, DateEmbauche: time.Now().AddDate(-2, 0, 0), VehiculeID: &vehicules[0].ID},
				{Nom: "Bernard", Prenom: "Sophie", Telephone: "0605060708", Actif: true, DateEmbauche: time.Now().AddDate(-1, -3, 0), VehiculeID: &vehicules[1].ID},
				{Nom: "Dubois", Prenom: "Karim", Telephone: "0609101112", Actif: true, DateEmbauche: time.Now().AddDate(0, -6, 0)},
			}
			if err := chauffeurRepository.CreateBatch(nil, chauffeurs); err != nil {
				slog.Error("could not create chauffeurs", "err", err)
				return
			}

			employes := []models.Employe{
				{Nom: "Petit", Prenom: "Claire", Email: "claire.petit@example.com"},
				{Nom: "Moreau", Prenom: "Antoine", Email: "antoine.moreau@example.com"},
			}
			if err := employeRepository.CreateBatch(nil, employes); err != nil {
				slog.Error("could not create employes", "err", err)
				return
			}

			slog.Info("seeded demo data", "vehicules", len(vehicules), "chauffeurs", len(chauffeurs), "employes", len(employes))
		},
	}

	return &seed
}
