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

func pendingMission() models.Mission {
	return models.Mission{
		ID:          1,
		Depart:      "Tunis",
		Destination: "Sfax",
		DateHeure:   time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Etat:        models.EtatEnAttente,
		EmployeID:   7,
	}
}

func testChauffeur() models.Chauffeur {
	return models.Chauffeur{ID: 3, Nom: "Ben Salah", Prenom: "Karim", Actif: true}
}

func TestAccept(t *testing.T) {
	t.Run("should assign the chauffeur, set acceptee and notify the requesting employee", func(t *testing.T) {
		mission := pendingMission()

		notices, err := Accept(&mission, testChauffeur())

		assert.NoError(t, err)
		assert.True(t, mission.Acceptee)
		assert.Equal(t, models.EtatEnAttente, mission.Etat)
		if assert.NotNil(t, mission.ChauffeurID) {
			assert.Equal(t, int64(3), *mission.ChauffeurID)
		}
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionAcceptee, notices[0].Type)
			if assert.NotNil(t, notices[0].ToEmploye) {
				assert.Equal(t, int64(7), *notices[0].ToEmploye)
			}
		}
	})

	t.Run("should reject a mission that was already accepted", func(t *testing.T) {
		mission := pendingMission()
		mission.Acceptee = true

		_, err := Accept(&mission, testChauffeur())

		var transitionErr *InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("should reject terminal states instead of silently ignoring them", func(t *testing.T) {
		for _, etat := range []models.EtatMission{models.EtatTerminee, models.EtatRefusee} {
			mission := pendingMission()
			mission.Etat = etat

			_, err := Accept(&mission, testChauffeur())

			var transitionErr *InvalidTransitionError
			assert.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, etat, mission.Etat, "state must be untouched on rejection")
		}
	})
}

func TestRefuse(t *testing.T) {
	t.Run("should move a pending mission to REFUSEE and forward the reason", func(t *testing.T) {
		mission := pendingMission()

		notices, err := Refuse(&mission, "véhicule en panne")

		assert.NoError(t, err)
		assert.Equal(t, models.EtatRefusee, mission.Etat)
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionRefusee, notices[0].Type)
			assert.Contains(t, notices[0].Message, "véhicule en panne")
		}
	})

	t.Run("should reject an empty or whitespace-only reason before touching state", func(t *testing.T) {
		for _, raison := range []string{"", "   ", "\t\n"} {
			mission := pendingMission()

			_, err := Refuse(&mission, raison)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, models.EtatEnAttente, mission.Etat)
		}
	})

	t.Run("should not allow refusing an already accepted mission", func(t *testing.T) {
		mission := pendingMission()
		mission.Acceptee = true

		_, err := Refuse(&mission, "trop tard")

		var transitionErr *InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("accept and refuse are mutually exclusive on the same mission", func(t *testing.T) {
		accepted := pendingMission()
		_, err := Accept(&accepted, testChauffeur())
		assert.NoError(t, err)
		_, err = Refuse(&accepted, "changement de plan")
		assert.Error(t, err)

		refused := pendingMission()
		_, err = Refuse(&refused, "indisponible")
		assert.NoError(t, err)
		_, err = Accept(&refused, testChauffeur())
		assert.Error(t, err)
	})
}

func TestStart(t *testing.T) {
	t.Run("should move an accepted pending mission to COMMENCEE", func(t *testing.T) {
		mission := pendingMission()
		_, err := Accept(&mission, testChauffeur())
		assert.NoError(t, err)

		notices, err := Start(&mission)

		assert.NoError(t, err)
		assert.Equal(t, models.EtatCommencee, mission.Etat)
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionCommencee, notices[0].Type)
		}
	})

	t.Run("should reject starting a mission nobody accepted", func(t *testing.T) {
		mission := pendingMission()

		_, err := Start(&mission)

		var transitionErr *InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("should reject terminal states", func(t *testing.T) {
		for _, etat := range []models.EtatMission{models.EtatTerminee, models.EtatRefusee} {
			mission := pendingMission()
			mission.Etat = etat
			mission.Acceptee = true

			_, err := Start(&mission)
			assert.Error(t, err)
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("should terminate a COMMENCEE mission", func(t *testing.T) {
		mission := pendingMission()
		mission.Etat = models.EtatCommencee
		mission.Acceptee = true

		notices, err := Complete(&mission)

		assert.NoError(t, err)
		assert.Equal(t, models.EtatTerminee, mission.Etat)
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionTerminee, notices[0].Type)
		}
	})

	t.Run("should terminate an EN_COURS mission and clear an open problem", func(t *testing.T) {
		mission := pendingMission()
		mission.Etat = models.EtatEnCours
		mission.Acceptee = true
		mission.Probleme = "pneu crevé"

		_, err := Complete(&mission)

		assert.NoError(t, err)
		assert.Equal(t, models.EtatTerminee, mission.Etat)
		assert.Empty(t, mission.Probleme)
	})

	t.Run("should reject completing a pending or terminal mission", func(t *testing.T) {
		for _, etat := range []models.EtatMission{models.EtatEnAttente, models.EtatTerminee, models.EtatRefusee} {
			mission := pendingMission()
			mission.Etat = etat

			_, err := Complete(&mission)

			var transitionErr *InvalidTransitionError
			assert.ErrorAs(t, err, &transitionErr)
		}
	})
}

func TestReportProbleme(t *testing.T) {
	t.Run("should flag the problem, keep the state and driver, and notify employee and admins", func(t *testing.T) {
		chauffeur := testChauffeur()
		mission := pendingMission()
		mission.Etat = models.EtatEnCours
		mission.Acceptee = true
		chauffeurID := chauffeur.ID
		mission.ChauffeurID = &chauffeurID
		mission.Chauffeur = &chauffeur

		notices, err := ReportProbleme(&mission, "accident mineur sur l'autoroute")

		assert.NoError(t, err)
		assert.Equal(t, models.EtatEnCours, mission.Etat)
		assert.Equal(t, "accident mineur sur l'autoroute", mission.Probleme)
		assert.NotNil(t, mission.ChauffeurID, "the driver stays assigned")
		if assert.Len(t, notices, 2) {
			assert.NotNil(t, notices[0].ToEmploye)
			assert.True(t, notices[1].ToAdmin)
		}
	})

	t.Run("should reject an empty description", func(t *testing.T) {
		mission := pendingMission()
		mission.Etat = models.EtatCommencee

		_, err := ReportProbleme(&mission, "  ")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("should reject reporting on a non-active mission", func(t *testing.T) {
		for _, etat := range []models.EtatMission{models.EtatEnAttente, models.EtatTerminee, models.EtatRefusee} {
			mission := pendingMission()
			mission.Etat = etat

			_, err := ReportProbleme(&mission, "souci")
			assert.Error(t, err)
		}
	})
}

func TestReassign(t *testing.T) {
	t.Run("should reset a problem mission to a clean pending state for the new driver", func(t *testing.T) {
		oldID := int64(3)
		mission := pendingMission()
		mission.Etat = models.EtatEnCours
		mission.Acceptee = true
		mission.ChauffeurID = &oldID
		mission.Probleme = "panne moteur"

		newChauffeur := models.Chauffeur{ID: 9, Nom: "Trabelsi", Prenom: "Sami", Actif: true}
		notices, err := Reassign(&mission, newChauffeur)

		assert.NoError(t, err)
		assert.Equal(t, models.EtatEnAttente, mission.Etat)
		assert.False(t, mission.Acceptee)
		assert.Empty(t, mission.Probleme)
		if assert.NotNil(t, mission.ChauffeurID) {
			assert.Equal(t, int64(9), *mission.ChauffeurID)
		}
		assert.False(t, mission.HasOpenProblem(), "a reassigned mission leaves the problem collection")
		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionAssignee, notices[0].Type)
			if assert.NotNil(t, notices[0].ToChauffeur) {
				assert.Equal(t, int64(9), *notices[0].ToChauffeur)
			}
		}
	})

	t.Run("should allow reassigning a refused mission", func(t *testing.T) {
		mission := pendingMission()
		mission.Etat = models.EtatRefusee

		_, err := Reassign(&mission, testChauffeur())

		assert.NoError(t, err)
		assert.Equal(t, models.EtatEnAttente, mission.Etat)
	})

	t.Run("should allow assigning a pending mission without a driver", func(t *testing.T) {
		mission := pendingMission()

		_, err := Reassign(&mission, testChauffeur())
		assert.NoError(t, err)
	})

	t.Run("should reject a completed mission and a healthy assigned one", func(t *testing.T) {
		done := pendingMission()
		done.Etat = models.EtatTerminee
		_, err := Reassign(&done, testChauffeur())
		assert.Error(t, err)

		chauffeurID := int64(3)
		healthy := pendingMission()
		healthy.Etat = models.EtatCommencee
		healthy.Acceptee = true
		healthy.ChauffeurID = &chauffeurID
		_, err = Reassign(&healthy, testChauffeur())
		assert.Error(t, err)
	})
}

func TestAssignmentNotices(t *testing.T) {
	t.Run("should notify the assigned driver at creation time", func(t *testing.T) {
		chauffeurID := int64(3)
		mission := pendingMission()
		mission.ChauffeurID = &chauffeurID

		notices := AssignmentNotices(mission)

		if assert.Len(t, notices, 1) {
			assert.Equal(t, models.NotificationMissionAssignee, notices[0].Type)
		}
	})

	t.Run("should stay silent for an unassigned mission", func(t *testing.T) {
		assert.Empty(t, AssignmentNotices(pendingMission()))
	})
}
