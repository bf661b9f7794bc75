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

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/stretchr/testify/assert"
)

func TestDriverAvailability(t *testing.T) {
	t.Run("an active mission overrides the inactive flag", func(t *testing.T) {
		chauffeur := models.Chauffeur{ID: 1, Actif: false}
		missions := []models.Mission{{Etat: models.EtatEnCours}}

		assert.Equal(t, ChauffeurEnMission, DriverAvailability(chauffeur, missions))
	})

	t.Run("a pending mission already claims the driver", func(t *testing.T) {
		chauffeur := models.Chauffeur{ID: 1, Actif: true}
		missions := []models.Mission{{Etat: models.EtatEnAttente}}

		assert.Equal(t, ChauffeurEnMission, DriverAvailability(chauffeur, missions))
	})

	t.Run("an active driver without engaging missions is DISPONIBLE", func(t *testing.T) {
		chauffeur := models.Chauffeur{ID: 1, Actif: true}
		missions := []models.Mission{{Etat: models.EtatTerminee}, {Etat: models.EtatRefusee}}

		assert.Equal(t, ChauffeurDisponible, DriverAvailability(chauffeur, missions))
		assert.Equal(t, ChauffeurDisponible, DriverAvailability(chauffeur, nil))
	})

	t.Run("an inactive driver without missions is INDISPONIBLE", func(t *testing.T) {
		chauffeur := models.Chauffeur{ID: 1, Actif: false}

		assert.Equal(t, ChauffeurIndisponible, DriverAvailability(chauffeur, nil))
	})
}

func TestComputeMissionStats(t *testing.T) {
	t.Run("should count every state bucket and include refused missions in the total", func(t *testing.T) {
		missions := []models.Mission{
			{Etat: models.EtatEnAttente},
			{Etat: models.EtatEnCours},
			{Etat: models.EtatTerminee},
			{Etat: models.EtatTerminee},
		}

		stats := ComputeMissionStats(missions)

		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 1, stats.Active)
		assert.Equal(t, 2, stats.Completed)
		assert.Equal(t, 0, stats.Refused)
		assert.InDelta(t, 50.0, stats.SuccessRate, 0.001)
	})

	t.Run("should count COMMENCEE as active too", func(t *testing.T) {
		stats := ComputeMissionStats([]models.Mission{{Etat: models.EtatCommencee}})
		assert.Equal(t, 1, stats.Active)
	})

	t.Run("an empty collection yields zeroes, not NaN", func(t *testing.T) {
		stats := ComputeMissionStats(nil)

		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0.0, stats.SuccessRate)
	})
}

func TestVehicleDisplayStatus(t *testing.T) {
	chauffeur := &models.Chauffeur{ID: 1, Actif: true}

	t.Run("no driver means unassigned", func(t *testing.T) {
		assert.Equal(t, "Non assigné", VehicleDisplayStatus(nil, nil))
	})

	t.Run("an assigned driver without an active mission is available", func(t *testing.T) {
		assert.Equal(t, "Assigné (Disponible)", VehicleDisplayStatus(chauffeur, nil))
		pending := &models.Mission{Etat: models.EtatEnAttente}
		assert.Equal(t, "Assigné (Disponible)", VehicleDisplayStatus(chauffeur, pending))
	})

	t.Run("active missions carry the state in the label", func(t *testing.T) {
		commencee := &models.Mission{Etat: models.EtatCommencee}
		enCours := &models.Mission{Etat: models.EtatEnCours}

		assert.Equal(t, "En mission (Commencée)", VehicleDisplayStatus(chauffeur, commencee))
		assert.Equal(t, "En mission (En cours)", VehicleDisplayStatus(chauffeur, enCours))
	})
}

func TestDriverDeletionGuard(t *testing.T) {
	t.Run("an active mission blocks deletion outright", func(t *testing.T) {
		assert.Equal(t, DeletionBlocked, DriverDeletionGuard(0, 1))
		assert.Equal(t, DeletionBlocked, DriverDeletionGuard(3, 1))
	})

	t.Run("pending missions only warn", func(t *testing.T) {
		assert.Equal(t, DeletionAllowedWithWarning, DriverDeletionGuard(1, 0))
	})

	t.Run("no missions at all means a clean delete", func(t *testing.T) {
		assert.Equal(t, DeletionAllowed, DriverDeletionGuard(0, 0))
	})
}

func TestMetaForNotification(t *testing.T) {
	t.Run("every known type has an entry", func(t *testing.T) {
		types := []models.NotificationType{
			models.NotificationMissionAssignee,
			models.NotificationMissionAcceptee,
			models.NotificationMissionCommencee,
			models.NotificationMissionTerminee,
			models.NotificationMissionRefusee,
			models.NotificationMissionProbleme,
			models.NotificationDemandeConge,
			models.NotificationCongeAccepte,
			models.NotificationCongeRefuse,
		}
		for _, typ := range types {
			meta := MetaForNotification(typ)
			assert.NotEmpty(t, meta.Label, string(typ))
			assert.NotEmpty(t, meta.Icon, string(typ))
		}
	})

	t.Run("unknown types fall back instead of breaking rendering", func(t *testing.T) {
		meta := MetaForNotification("SOMETHING_NEW")

		assert.Equal(t, "SOMETHING_NEW", meta.Label)
		assert.Equal(t, SeverityInfo, meta.Severity)
	})
}
