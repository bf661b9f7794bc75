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
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
)

type statsService struct {
	missionRepository         shared.MissionRepository
	chauffeurRepository       shared.ChauffeurRepository
	vehiculeRepository        shared.VehiculeRepository
	indisponibiliteRepository shared.IndisponibiliteRepository
}

func NewStatsService(
	missionRepository shared.MissionRepository,
	chauffeurRepository shared.ChauffeurRepository,
	vehiculeRepository shared.VehiculeRepository,
	indisponibiliteRepository shared.IndisponibiliteRepository,
) *statsService {
	return &statsService{
		missionRepository:         missionRepository,
		chauffeurRepository:       chauffeurRepository,
		vehiculeRepository:        vehiculeRepository,
		indisponibiliteRepository: indisponibiliteRepository,
	}
}

func (s *statsService) AdminDashboard() (dtos.DashboardStats, error) {
	missions, err := s.missionRepository.GetAll()
	if err != nil {
		return dtos.DashboardStats{}, err
	}

	stats := dtos.DashboardStats{
		Missions: statemachine.ComputeMissionStats(missions),
	}

	// group once so each driver's availability is a map lookup, not a query
	missionsByChauffeur := make(map[int64][]models.Mission)
	for _, m := range missions {
		if m.ChauffeurID != nil {
			missionsByChauffeur[*m.ChauffeurID] = append(missionsByChauffeur[*m.ChauffeurID], m)
		}
	}

	chauffeurs, err := s.chauffeurRepository.GetAll()
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	stats.TotalChauffeurs = int64(len(chauffeurs))
	for _, chauffeur := range chauffeurs {
		switch statemachine.DriverAvailability(chauffeur, missionsByChauffeur[chauffeur.ID]) {
		case statemachine.ChauffeurEnMission:
			stats.ChauffeursEnMission++
		case statemachine.ChauffeurDisponible:
			stats.ChauffeursDisponible++
		}
	}

	vehicules, err := s.vehiculeRepository.GetAll()
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	stats.TotalVehicules = int64(len(vehicules))
	for _, vehicule := range vehicules {
		if vehicule.Disponible {
			stats.VehiculesDisponible++
		}
	}

	pendingLeave, err := s.indisponibiliteRepository.GetPending()
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	stats.DemandesCongeEnAttente = int64(len(pendingLeave))

	withProblems, err := s.missionRepository.GetWithOpenProblems()
	if err != nil {
		return dtos.DashboardStats{}, err
	}
	stats.MissionsAvecProbleme = int64(len(withProblems))

	return stats, nil
}

func (s *statsService) ForEmploye(employeID int64) (statemachine.MissionStats, error) {
	missions, err := s.missionRepository.GetByEmployeID(employeID)
	if err != nil {
		return statemachine.MissionStats{}, err
	}
	return statemachine.ComputeMissionStats(missions), nil
}

func (s *statsService) ForChauffeur(chauffeurID int64) (statemachine.MissionStats, error) {
	missions, err := s.missionRepository.GetByChauffeurID(chauffeurID)
	if err != nil {
		return statemachine.MissionStats{}, err
	}
	return statemachine.ComputeMissionStats(missions), nil
}
