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
	"fmt"
	"testing"
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/database/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixture wires the full service graph against an in-memory database so
// tests exercise the real repositories and transactions.
type fixture struct {
	db *gorm.DB

	missions      *missionService
	leaves        *leaveService
	chauffeurs    *chauffeurService
	notifications *notificationService
	stats         *statsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Vehicule{},
		&models.Chauffeur{},
		&models.Employe{},
		&models.User{},
		&models.Mission{},
		&models.Indisponibilite{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	missionRepository := repositories.NewMissionRepository(db)
	chauffeurRepository := repositories.NewChauffeurRepository(db)
	vehiculeRepository := repositories.NewVehiculeRepository(db)
	indisponibiliteRepository := repositories.NewIndisponibiliteRepository(db)
	notificationRepository := repositories.NewNotificationRepository(db)
	userRepository := repositories.NewUserRepository(db)

	notifications := NewNotificationService(notificationRepository)
	return &fixture{
		db:            db,
		missions:      NewMissionService(missionRepository, chauffeurRepository, vehiculeRepository, indisponibiliteRepository, notifications),
		leaves:        NewLeaveService(indisponibiliteRepository, chauffeurRepository, missionRepository, notifications),
		chauffeurs:    NewChauffeurService(chauffeurRepository, missionRepository, userRepository),
		notifications: notifications,
		stats:         NewStatsService(missionRepository, chauffeurRepository, vehiculeRepository, indisponibiliteRepository),
	}
}

func (f *fixture) seedEmploye(t *testing.T) models.Employe {
	t.Helper()
	employe := models.Employe{Nom: "Gharbi", Prenom: "Amal", Email: fmt.Sprintf("%s@fleetdesk.example", t.Name())}
	if err := f.db.Create(&employe).Error; err != nil {
		t.Fatalf("seed employe: %v", err)
	}
	return employe
}

func (f *fixture) seedChauffeur(t *testing.T) models.Chauffeur {
	t.Helper()
	chauffeur := models.Chauffeur{Nom: "Ben Salah", Prenom: "Karim", Telephone: "555-0101", Actif: true, DateEmbauche: time.Now()}
	if err := f.db.Create(&chauffeur).Error; err != nil {
		t.Fatalf("seed chauffeur: %v", err)
	}
	return chauffeur
}

func (f *fixture) seedMission(t *testing.T, employeID int64, etat models.EtatMission, chauffeurID *int64) models.Mission {
	t.Helper()
	mission := models.Mission{
		Depart:      "Tunis",
		Destination: "Sfax",
		DateHeure:   time.Now().Add(24 * time.Hour),
		TypeMission: models.TypeMateriel,
		Etat:        etat,
		EmployeID:   employeID,
		ChauffeurID: chauffeurID,
	}
	if err := f.db.Create(&mission).Error; err != nil {
		t.Fatalf("seed mission: %v", err)
	}
	return mission
}

func (f *fixture) notificationCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&models.Notification{}).Count(&count).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return count
}
