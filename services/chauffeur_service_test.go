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
	"testing"
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/stretchr/testify/assert"
)

func TestChauffeurServiceDelete(t *testing.T) {
	t.Run("should block deletion while a mission is in progress", func(t *testing.T) {
		f := newFixture(t)
		employe := f.seedEmploye(t)
		chauffeur := f.seedChauffeur(t)
		f.seedMission(t, employe.ID, models.EtatEnCours, &chauffeur.ID)

		_, err := f.chauffeurs.Delete(chauffeur.ID)

		assert.Error(t, err)
		var count int64
		f.db.Model(&models.Chauffeur{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should release pending missions and warn", func(t *testing.T) {
		f := newFixture(t)
		employe := f.seedEmploye(t)
		chauffeur := f.seedChauffeur(t)
		pending := f.seedMission(t, employe.ID, models.EtatEnAttente, &chauffeur.ID)

		result, err := f.chauffeurs.Delete(chauffeur.ID)

		assert.NoError(t, err)
		assert.True(t, result.Deleted)
		assert.Equal(t, int64(1), result.ReleasedMissions)
		assert.NotEmpty(t, result.Warning)

		reloaded := models.Mission{}
		assert.NoError(t, f.db.First(&reloaded, pending.ID).Error)
		assert.Nil(t, reloaded.ChauffeurID)
		assert.Equal(t, models.EtatEnAttente, reloaded.Etat)
	})

	t.Run("should delete silently when nothing is assigned", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)

		result, err := f.chauffeurs.Delete(chauffeur.ID)

		assert.NoError(t, err)
		assert.True(t, result.Deleted)
		assert.Empty(t, result.Warning)
		assert.Zero(t, result.ReleasedMissions)
	})
}

func TestChauffeurServiceCreate(t *testing.T) {
	t.Run("should provision a login when credentials are given", func(t *testing.T) {
		f := newFixture(t)

		chauffeur, err := f.chauffeurs.Create(dtos.ChauffeurCreateRequest{
			Nom:          "Ben Salah",
			Prenom:       "Karim",
			Telephone:    "555-0101",
			DateEmbauche: time.Now(),
			Email:        "karim@fleetdesk.example",
			Password:     "correct horse battery",
		})

		assert.NoError(t, err)
		assert.NotNil(t, chauffeur.UserID)

		var user models.User
		assert.NoError(t, f.db.Where("email = ?", "karim@fleetdesk.example").First(&user).Error)
		assert.Equal(t, models.RoleChauffeur, user.Role)
		assert.Equal(t, chauffeur.ID, *user.ChauffeurID)
		assert.NoError(t, user.ComparePassword("correct horse battery"))
	})

	t.Run("should create a driver without a login", func(t *testing.T) {
		f := newFixture(t)

		chauffeur, err := f.chauffeurs.Create(dtos.ChauffeurCreateRequest{
			Nom:          "Trabelsi",
			Prenom:       "Sami",
			Telephone:    "555-0102",
			DateEmbauche: time.Now(),
		})

		assert.NoError(t, err)
		assert.Nil(t, chauffeur.UserID)
		assert.True(t, chauffeur.Actif)
	})
}

func TestChauffeurServiceAvailability(t *testing.T) {
	t.Run("should report EN_MISSION even for a deactivated driver", func(t *testing.T) {
		f := newFixture(t)
		employe := f.seedEmploye(t)
		chauffeur := f.seedChauffeur(t)
		f.seedMission(t, employe.ID, models.EtatEnCours, &chauffeur.ID)
		assert.NoError(t, f.db.Model(&chauffeur).Update("actif", false).Error)

		statut, err := f.chauffeurs.Availability(chauffeur.ID)

		assert.NoError(t, err)
		assert.Equal(t, statemachine.ChauffeurEnMission, statut)
	})

	t.Run("should only list drivers free of engaging missions", func(t *testing.T) {
		f := newFixture(t)
		employe := f.seedEmploye(t)
		busy := f.seedChauffeur(t)
		free := models.Chauffeur{Nom: "Trabelsi", Prenom: "Sami", Telephone: "555-0102", Actif: true, DateEmbauche: time.Now()}
		assert.NoError(t, f.db.Create(&free).Error)
		f.seedMission(t, employe.ID, models.EtatEnAttente, &busy.ID)

		available, err := f.chauffeurs.ListAvailable()

		assert.NoError(t, err)
		if assert.Len(t, available, 1) {
			assert.Equal(t, free.ID, available[0].ID)
		}
	})
}
