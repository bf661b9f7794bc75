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
	"fmt"
	"testing"
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
		&models.Mission{},
		&models.Indisponibilite{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedActors(t *testing.T, db *gorm.DB) (models.Employe, models.Chauffeur) {
	t.Helper()
	employe := models.Employe{Nom: "Gharbi", Prenom: "Amal", Email: "amal@fleetdesk.example"}
	if err := db.Create(&employe).Error; err != nil {
		t.Fatalf("seed employe: %v", err)
	}
	chauffeur := models.Chauffeur{Nom: "Ben Salah", Prenom: "Karim", Telephone: "555-0101", Actif: true, DateEmbauche: time.Now()}
	if err := db.Create(&chauffeur).Error; err != nil {
		t.Fatalf("seed chauffeur: %v", err)
	}
	return employe, chauffeur
}

func TestMissionRepository(t *testing.T) {
	t.Run("GetPendingUnassigned only returns driverless pending missions", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, chauffeur := seedActors(t, db)

		unassigned := models.Mission{Depart: "Tunis", Destination: "Sfax", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnAttente, EmployeID: employe.ID}
		assigned := models.Mission{Depart: "Tunis", Destination: "Gabès", DateHeure: time.Now(), TypeMission: models.TypeDocument, Etat: models.EtatEnAttente, EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		done := models.Mission{Depart: "Tunis", Destination: "Bizerte", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatTerminee, EmployeID: employe.ID}
		for _, m := range []*models.Mission{&unassigned, &assigned, &done} {
			assert.NoError(t, repo.Create(nil, m))
		}

		missions, err := repo.GetPendingUnassigned()

		assert.NoError(t, err)
		if assert.Len(t, missions, 1) {
			assert.Equal(t, unassigned.ID, missions[0].ID)
		}
	})

	t.Run("GetWithOpenProblems excludes terminal missions", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, chauffeur := seedActors(t, db)

		open := models.Mission{Depart: "A", Destination: "B", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnCours, Probleme: "panne", EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		resolvedByCompletion := models.Mission{Depart: "A", Destination: "C", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatTerminee, EmployeID: employe.ID}
		healthy := models.Mission{Depart: "A", Destination: "D", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatCommencee, EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		for _, m := range []*models.Mission{&open, &resolvedByCompletion, &healthy} {
			assert.NoError(t, repo.Create(nil, m))
		}

		missions, err := repo.GetWithOpenProblems()

		assert.NoError(t, err)
		if assert.Len(t, missions, 1) {
			assert.Equal(t, open.ID, missions[0].ID)
		}
	})

	t.Run("GetWithOpenProblemsByEmploye scopes problems to the employe", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, chauffeur := seedActors(t, db)
		other := models.Employe{Nom: "Mansour", Prenom: "Leila", Email: "leila@fleetdesk.example"}
		assert.NoError(t, db.Create(&other).Error)

		mine := models.Mission{Depart: "A", Destination: "B", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnCours, Probleme: "panne", EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		theirs := models.Mission{Depart: "A", Destination: "C", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnCours, Probleme: "retard", EmployeID: other.ID, ChauffeurID: &chauffeur.ID}
		assert.NoError(t, repo.Create(nil, &mine))
		assert.NoError(t, repo.Create(nil, &theirs))

		missions, err := repo.GetWithOpenProblemsByEmploye(employe.ID)

		assert.NoError(t, err)
		if assert.Len(t, missions, 1) {
			assert.Equal(t, mine.ID, missions[0].ID)
		}
	})

	t.Run("ReadForUpdate reads through the active transaction", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, _ := seedActors(t, db)

		mission := models.Mission{Depart: "A", Destination: "B", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnAttente, EmployeID: employe.ID}
		assert.NoError(t, repo.Create(nil, &mission))

		err := repo.Transaction(func(tx *gorm.DB) error {
			m, err := repo.ReadForUpdate(tx, mission.ID)
			if err != nil {
				return err
			}
			m.Etat = models.EtatCommencee
			if err := repo.Save(tx, &m); err != nil {
				return err
			}

			// the uncommitted write must be visible to a second read
			// through the same transaction
			again, err := repo.ReadForUpdate(tx, mission.ID)
			if err != nil {
				return err
			}
			assert.Equal(t, models.EtatCommencee, again.Etat)
			return nil
		})
		assert.NoError(t, err)

		reloaded, err := repo.Read(mission.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.EtatCommencee, reloaded.Etat)
	})

	t.Run("CountByChauffeurAndStates counts active missions", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, chauffeur := seedActors(t, db)

		for _, etat := range []models.EtatMission{models.EtatCommencee, models.EtatEnCours, models.EtatTerminee} {
			m := models.Mission{Depart: "A", Destination: "B", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: etat, EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
			assert.NoError(t, repo.Create(nil, &m))
		}

		count, err := repo.CountByChauffeurAndStates(chauffeur.ID, []models.EtatMission{models.EtatCommencee, models.EtatEnCours})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("UnassignPendingFromChauffeur releases pending missions only", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMissionRepository(db)
		employe, chauffeur := seedActors(t, db)

		pending := models.Mission{Depart: "A", Destination: "B", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnAttente, Acceptee: true, EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		active := models.Mission{Depart: "A", Destination: "C", DateHeure: time.Now(), TypeMission: models.TypeMateriel, Etat: models.EtatEnCours, EmployeID: employe.ID, ChauffeurID: &chauffeur.ID}
		assert.NoError(t, repo.Create(nil, &pending))
		assert.NoError(t, repo.Create(nil, &active))

		released, err := repo.UnassignPendingFromChauffeur(nil, chauffeur.ID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), released)

		reloaded, err := repo.Read(pending.ID)
		assert.NoError(t, err)
		assert.Nil(t, reloaded.ChauffeurID)
		assert.False(t, reloaded.Acceptee)

		stillActive, err := repo.Read(active.ID)
		assert.NoError(t, err)
		assert.NotNil(t, stillActive.ChauffeurID)
	})
}

func TestIndisponibiliteRepository(t *testing.T) {
	t.Run("GetPending honors the legacy acceptee fallback", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewIndisponibiliteRepository(db)
		_, chauffeur := seedActors(t, db)

		window := func() (time.Time, time.Time) {
			start := time.Now().AddDate(0, 0, 7)
			return start, start.AddDate(0, 0, 3)
		}

		start, end := window()
		explicit := models.Indisponibilite{ChauffeurID: chauffeur.ID, DateDebut: start, DateFin: end, Type: models.CongeAnnuel, Statut: models.CongeEnAttente}
		legacyPending := models.Indisponibilite{ChauffeurID: chauffeur.ID, DateDebut: start, DateFin: end, Type: models.CongeMaladie}
		legacyAccepted := models.Indisponibilite{ChauffeurID: chauffeur.ID, DateDebut: start, DateFin: end, Type: models.CongeAnnuel, Acceptee: true}
		decided := models.Indisponibilite{ChauffeurID: chauffeur.ID, DateDebut: start, DateFin: end, Type: models.CongeAnnuel, Statut: models.CongeRefusee}
		for _, d := range []*models.Indisponibilite{&explicit, &legacyPending, &legacyAccepted, &decided} {
			assert.NoError(t, repo.Create(nil, d))
		}

		pending, err := repo.GetPending()

		assert.NoError(t, err)
		ids := make([]int64, len(pending))
		for i, d := range pending {
			ids[i] = d.ID
		}
		assert.ElementsMatch(t, []int64{explicit.ID, legacyPending.ID}, ids)
	})

	t.Run("GetAcceptedOverlapping finds accepted leave in the window", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewIndisponibiliteRepository(db)
		_, chauffeur := seedActors(t, db)

		start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
		accepted := models.Indisponibilite{ChauffeurID: chauffeur.ID, DateDebut: start, DateFin: end, Type: models.CongeAnnuel, Statut: models.CongeAcceptee}
		assert.NoError(t, repo.Create(nil, &accepted))

		overlapping, err := repo.GetAcceptedOverlapping(chauffeur.ID, start.AddDate(0, 0, 5), start.AddDate(0, 0, 20))
		assert.NoError(t, err)
		assert.Len(t, overlapping, 1)

		outside, err := repo.GetAcceptedOverlapping(chauffeur.ID, end.AddDate(0, 0, 1), end.AddDate(0, 0, 5))
		assert.NoError(t, err)
		assert.Empty(t, outside)
	})
}

func TestNotificationRepository(t *testing.T) {
	t.Run("unread counts are scoped per inbox", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewNotificationRepository(db)
		employe, chauffeur := seedActors(t, db)

		now := time.Now()
		notifications := []models.Notification{
			{Type: models.NotificationMissionAcceptee, Message: "a", DateEnvoi: now, EmployeID: &employe.ID},
			{Type: models.NotificationMissionTerminee, Message: "b", DateEnvoi: now, EmployeID: &employe.ID, Lue: true},
			{Type: models.NotificationMissionAssignee, Message: "c", DateEnvoi: now, ChauffeurID: &chauffeur.ID},
			{Type: models.NotificationMissionProbleme, Message: "d", DateEnvoi: now, ForAdmin: true},
		}
		for i := range notifications {
			assert.NoError(t, repo.Create(nil, &notifications[i]))
		}

		employeCount, err := repo.CountUnreadForEmploye(employe.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), employeCount)

		chauffeurCount, err := repo.CountUnreadForChauffeur(chauffeur.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), chauffeurCount)

		adminCount, err := repo.CountUnreadForAdmin()
		assert.NoError(t, err)
		assert.Equal(t, int64(1), adminCount)
	})

	t.Run("MarkAllRead only touches the given inbox", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewNotificationRepository(db)
		employe, chauffeur := seedActors(t, db)

		now := time.Now()
		forEmploye := models.Notification{Type: models.NotificationMissionAcceptee, Message: "a", DateEnvoi: now, EmployeID: &employe.ID}
		forChauffeur := models.Notification{Type: models.NotificationMissionAssignee, Message: "b", DateEnvoi: now, ChauffeurID: &chauffeur.ID}
		assert.NoError(t, repo.Create(nil, &forEmploye))
		assert.NoError(t, repo.Create(nil, &forChauffeur))

		assert.NoError(t, repo.MarkAllReadForEmploye(nil, employe.ID))

		employeCount, _ := repo.CountUnreadForEmploye(employe.ID)
		chauffeurCount, _ := repo.CountUnreadForChauffeur(chauffeur.ID)
		assert.Equal(t, int64(0), employeCount)
		assert.Equal(t, int64(1), chauffeurCount)
	})

	t.Run("DeleteReadOlderThan keeps unread and recent rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewNotificationRepository(db)
		employe, _ := seedActors(t, db)

		old := time.Now().AddDate(0, 0, -90)
		oldRead := models.Notification{Type: models.NotificationMissionTerminee, Message: "old read", DateEnvoi: old, Lue: true, EmployeID: &employe.ID}
		oldUnread := models.Notification{Type: models.NotificationMissionTerminee, Message: "old unread", DateEnvoi: old, EmployeID: &employe.ID}
		fresh := models.Notification{Type: models.NotificationMissionTerminee, Message: "fresh", DateEnvoi: time.Now(), Lue: true, EmployeID: &employe.ID}
		for _, n := range []*models.Notification{&oldRead, &oldUnread, &fresh} {
			assert.NoError(t, repo.Create(nil, n))
		}

		deleted, err := repo.DeleteReadOlderThan(nil, 30)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		remaining, err := repo.GetForEmploye(employe.ID)
		assert.NoError(t, err)
		assert.Len(t, remaining, 2)
	})
}
