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
package statemachine

import (
	"testing"
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/stretchr/testify/assert"
)

func pendingLeave() models.Indisponibilite {
	return models.Indisponibilite{
		ID:          1,
		ChauffeurID: 3,
		DateDebut:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DateFin:     time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Type:        models.CongeAnnuel,
		Statut:      models.CongeEnAttente,
	}
}

func TestEffectiveLeaveStatus(t *testing.T) {
	t.Run("a legacy accepted row without statut resolves to ACCEPTEE and is terminal", func(t *testing.T) {
		legacy := models.Indisponibilite{ChauffeurID: 3, Acceptee: true}

		assert.Equal(t, models.CongeAcceptee, EffectiveLeaveStatus(legacy))
		assert.False(t, LeavePending(legacy))

		_, err := AcceptLeave(&legacy)
		assert.Error(t, err)
		_, err = RefuseLeave(&legacy, "déjà décidé")
		assert.Error(t, err)
	})

	t.Run("a legacy unaccepted row resolves to EN_ATTENTE", func(t *testing.T) {
		legacy := models.Indisponibilite{ChauffeurID: 3, Acceptee: false}

		assert.Equal(t, models.CongeEnAttente, EffectiveLeaveStatus(legacy))
		assert.True(t, LeavePending(legacy))
	})

	t.Run("an explicit statut wins over the legacy flag", func(t *testing.T) {
		leave := models.Indisponibilite{Statut: models.CongeRefusee, Acceptee: true}

		assert.Equal(t, models.CongeRefusee, EffectiveLeaveStatus(leave))
	})
}

func TestAcceptLeave(t *testing.T) {
	t.Run("should accept a pending request and notify the driver", func(t *testing.T) {
		leave := pendingLeave()

		notices, err := AcceptLeave(&leave)

		assert.NoError(t, err)
		assert.Equal(t, models.CongeAcceptee, leave.Statut)
		assert.True(t, leave.Acceptee, "the legacy flag stays in sync")
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationCongeAccepte, notices[0].Type)
			if assert.NotNil(t, notices[0].ToChauffeur) {
				assert.Equal(t, int64(3), *notices[0].ToChauffeur)
			}
		}
	})

	t.Run("should reject a request that was already decided", func(t *testing.T) {
		for _, statut := range []models.StatutConge{models.CongeAcceptee, models.CongeRefusee} {
			leave := pendingLeave()
			leave.Statut = statut

			_, err := AcceptLeave(&leave)

			var transitionErr *InvalidTransitionError
			assert.ErrorAs(t, err, &transitionErr)
		}
	})
}

func TestRefuseLeave(t *testing.T) {
	t.Run("should refuse a pending request with the reason in the message", func(t *testing.T) {
		leave := pendingLeave()

		notices, err := RefuseLeave(&leave, "effectif insuffisant")

		assert.NoError(t, err)
		assert.Equal(t, models.CongeRefusee, leave.Statut)
		assert.False(t, leave.Acceptee)
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationCongeRefuse, notices[0].Type)
			assert.Contains(t, notices[0].Message, "effectif insuffisant")
		}
	})

	t.Run("should require a reason", func(t *testing.T) {
		leave := pendingLeave()

		_, err := RefuseLeave(&leave, "   ")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, models.CongeEnAttente, leave.Statut)
	})
}

func TestLeaveRequestNotices(t *testing.T) {
	t.Run("should address the fanout to admins", func(t *testing.T) {
		leave := pendingLeave()
		chauffeur := models.Chauffeur{ID: 3, Nom: "Ben Salah", Prenom: "Karim"}

		notices := LeaveRequestNotices(leave, chauffeur)

		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationDemandeConge, notices[0].Type)
			assert.True(t, notices[0].ToAdmin)
			assert.Contains(t, notices[0].Message, "Ben Salah Karim")
		}
	})
}
