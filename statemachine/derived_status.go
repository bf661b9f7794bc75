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
	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type StatutChauffeur string

const (
	ChauffeurDisponible   StatutChauffeur = "DISPONIBLE"
	ChauffeurEnMission    StatutChauffeur = "EN_MISSION"
	ChauffeurIndisponible StatutChauffeur = "INDISPONIBLE"
)

// isEngaging reports whether a mission keeps its driver occupied for
// dispatch purposes. Pending missions count: an assigned-but-unstarted
// mission already claims the driver.
func isEngaging(etat models.EtatMission) bool {
	return etat == models.EtatEnAttente || etat.IsActive()
}

// DriverAvailability derives the dispatch status of a driver from their
// mission set. Operational load takes priority over the administrative
// actif flag: a driver mid-mission is EN_MISSION even when marked inactive.
func DriverAvailability(chauffeur models.Chauffeur, missions []models.Mission) StatutChauffeur {
	for _, m := range missions {
		if isEngaging(m.Etat) {
			return ChauffeurEnMission
		}
	}
	if !chauffeur.Actif {
		return ChauffeurIndisponible
	}
	return ChauffeurDisponible
}

// MissionStats are the per-actor dashboard aggregates over a mission
// collection. Total includes every state, refused ones too.
type MissionStats struct {
	Total     int `json:"totalMissions"`
	Pending   int `json:"pendingMissions"`
	Active    int `json:"activeMissions"`
	Completed int `json:"completedMissions"`
	Refused   int `json:"refusedMissions"`
	// completed over total, in percent, 0 when there are no missions
	SuccessRate float64 `json:"successRate"`
}

func ComputeMissionStats(missions []models.Mission) MissionStats {
	stats := MissionStats{Total: len(missions)}
	for _, m := range missions {
		switch {
		case m.Etat == models.EtatEnAttente:
			stats.Pending++
		case m.Etat.IsActive():
			stats.Active++
		case m.Etat == models.EtatTerminee:
			stats.Completed++
		case m.Etat == models.EtatRefusee:
			stats.Refused++
		}
	}
	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// VehicleDisplayStatus derives the three-way assignment label shown in the
// fleet views. Not a stored field.
func VehicleDisplayStatus(chauffeur *models.Chauffeur, currentMission *models.Mission) string {
	if chauffeur == nil {
		return "Non assigné"
	}
	if currentMission != nil && currentMission.Etat.IsActive() {
		switch currentMission.Etat {
		case models.EtatCommencee:
			return "En mission (Commencée)"
		case models.EtatEnCours:
			return "En mission (En cours)"
		default:
			return "En mission"
		}
	}
	return "Assigné (Disponible)"
}

type DeletionDecision int

const (
	DeletionAllowed DeletionDecision = iota
	// pending missions exist - they will be returned to the unassigned pool
	DeletionAllowedWithWarning
	DeletionBlocked
)

// DriverDeletionGuard decides whether a driver may be deleted. Active
// missions block outright; pending ones only warn, since they can be
// reassigned. The server enforces the same rule - this is not merely
// advisory here.
func DriverDeletionGuard(pendingCount, activeCount int) DeletionDecision {
	if activeCount > 0 {
		return DeletionBlocked
	}
	if pendingCount > 0 {
		return DeletionAllowedWithWarning
	}
	return DeletionAllowed
}
