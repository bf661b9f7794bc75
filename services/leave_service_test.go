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

func TestLeaveServiceCreate(t *testing.T) {
	t.Run("should create a pending request and notify the admin", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)

		start := time.Now().AddDate(0, 0, 14)
		leave, err := f.leaves.Create(dtos.CongeCreateRequest{
			DateDebut: start,
			DateFin:   start.AddDate(0, 0, 5),
			Type:      "CONGE_ANNUEL",
		}, chauffeur.ID)

		assert.NoError(t, err)
		assert.Equal(t, models.CongeEnAttente, leave.Statut)

		var notification models.Notification
		assert.NoError(t, f.db.Where("for_admin = ?", true).First(&notification).Error)
		assert.Equal(t, models.NotificationDemandeConge, notification.Type)
		assert.Equal(t, leave.ID, *notification.IndisponibiliteID)
	})

	t.Run("should reject an inverted date range", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)

		start := time.Now().AddDate(0, 0, 14)
		_, err := f.leaves.Create(dtos.CongeCreateRequest{
			DateDebut: start,
			DateFin:   start.AddDate(0, 0, -2),
			Type:      "CONGE_ANNUEL",
		}, chauffeur.ID)

		var validationErr *statemachine.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestLeaveServiceDecisions(t *testing.T) {
	newPending := func(t *testing.T, f *fixture, chauffeurID int64) models.Indisponibilite {
		start := time.Now().AddDate(0, 0, 14)
		leave, err := f.leaves.Create(dtos.CongeCreateRequest{
			DateDebut: start,
			DateFin:   start.AddDate(0, 0, 5),
			Type:      "CONGE_MALADIE",
		}, chauffeurID)
		assert.NoError(t, err)
		return leave
	}

	t.Run("should accept a pending request and notify the driver", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)
		leave := newPending(t, f, chauffeur.ID)

		leave, err := f.leaves.Accept(leave.ID)

		assert.NoError(t, err)
		assert.Equal(t, models.CongeAcceptee, leave.Statut)
		assert.True(t, leave.Acceptee)

		var notification models.Notification
		assert.NoError(t, f.db.Where("chauffeur_id = ?", chauffeur.ID).First(&notification).Error)
		assert.Equal(t, models.NotificationCongeAccepte, notification.Type)
	})

	t.Run("should deactivate a driver without pending or running missions", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)
		leave := newPending(t, f, chauffeur.ID)

		_, err := f.leaves.Accept(leave.ID)
		assert.NoError(t, err)

		var reloaded models.Chauffeur
		assert.NoError(t, f.db.First(&reloaded, "id = ?", chauffeur.ID).Error)
		assert.False(t, reloaded.Actif)
	})

	t.Run("should keep a driver active while missions are outstanding", func(t *testing.T) {
		f := newFixture(t)
		employe := f.seedEmploye(t)
		chauffeur := f.seedChauffeur(t)
		f.seedMission(t, employe.ID, models.EtatEnCours, &chauffeur.ID)
		leave := newPending(t, f, chauffeur.ID)

		_, err := f.leaves.Accept(leave.ID)
		assert.NoError(t, err)

		var reloaded models.Chauffeur
		assert.NoError(t, f.db.First(&reloaded, "id = ?", chauffeur.ID).Error)
		assert.True(t, reloaded.Actif)
	})

	t.Run("should require a reason to refuse", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)
		leave := newPending(t, f, chauffeur.ID)

		_, err := f.leaves.Refuse(leave.ID, "")
		var validationErr *statemachine.ValidationError
		assert.ErrorAs(t, err, &validationErr)

		refused, err := f.leaves.Refuse(leave.ID, "effectif insuffisant")
		assert.NoError(t, err)
		assert.Equal(t, models.CongeRefusee, refused.Statut)
	})

	t.Run("should treat a legacy accepted row as terminal", func(t *testing.T) {
		f := newFixture(t)
		chauffeur := f.seedChauffeur(t)

		start := time.Now().AddDate(0, 0, 14)
		legacy := models.Indisponibilite{
			ChauffeurID: chauffeur.ID,
			DateDebut:   start,
			DateFin:     start.AddDate(0, 0, 3),
			Type:        models.CongeAnnuel,
			Acceptee:    true,
		}
		assert.NoError(t, f.db.Create(&legacy).Error)

		_, err := f.leaves.Refuse(legacy.ID, "trop tard")
		var invalidErr *statemachine.InvalidTransitionError
		assert.ErrorAs(t, err, &invalidErr)

		_, err = f.leaves.Accept(legacy.ID)
		assert.ErrorAs(t, err, &invalidErr)
	})
}
