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

	"github.com/fleetdesk-io/fleetdesk/database"
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
)

type vehiculeService struct {
	vehiculeRepository  shared.VehiculeRepository
	chauffeurRepository shared.ChauffeurRepository
	missionRepository   shared.MissionRepository
}

func NewVehiculeService(
	vehiculeRepository shared.VehiculeRepository,
	chauffeurRepository shared.ChauffeurRepository,
	missionRepository shared.MissionRepository,
) *vehiculeService {
	return &vehiculeService{
		vehiculeRepository:  vehiculeRepository,
		chauffeurRepository: chauffeurRepository,
		missionRepository:   missionRepository,
	}
}

func (s *vehiculeService) Create(request dtos.VehiculeCreateRequest) (models.Vehicule, error) {
	vehicule := models.Vehicule{
		Immatriculation: request.Immatriculation,
		Marque:          request.Marque,
		Modele:          request.Modele,
		Capacite:        request.Capacite,
		Disponible:      true,
	}
	if err := s.vehiculeRepository.Create(nil, &vehicule); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Vehicule{}, echo.NewHTTPError(409, "a vehicule with that immatriculation already exists").WithInternal(err)
		}
		return models.Vehicule{}, err
	}
	return vehicule, nil
}

func (s *vehiculeService) Read(id int64) (models.Vehicule, error) {
	return s.vehiculeRepository.Read(id)
}

func (s *vehiculeService) Update(id int64, request dtos.VehiculeUpdateRequest) (models.Vehicule, error) {
	vehicule, err := s.vehiculeRepository.Read(id)
	if err != nil {
		return models.Vehicule{}, err
	}

	if request.Immatriculation != nil {
		vehicule.Immatriculation = *request.Immatriculation
	}
	if request.Marque != nil {
		vehicule.Marque = *request.Marque
	}
	if request.Modele != nil {
		vehicule.Modele = *request.Modele
	}
	if request.Capacite != nil {
		vehicule.Capacite = *request.Capacite
	}
	if request.Disponible != nil {
		vehicule.Disponible = *request.Disponible
	}

	if err := s.vehiculeRepository.Save(nil, &vehicule); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Vehicule{}, echo.NewHTTPError(409, "a vehicule with that immatriculation already exists").WithInternal(err)
		}
		return models.Vehicule{}, err
	}
	return vehicule, nil
}

func (s *vehiculeService) Delete(id int64) error {
	active, err := s.missionRepository.GetActiveByVehiculeID(id)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return echo.NewHTTPError(409, "vehicule is used by a mission in progress").
			WithInternal(fmt.Errorf("vehicule %d is referenced by %d active missions", id, len(active)))
	}
	return s.vehiculeRepository.Delete(nil, id)
}

// ListAll decorates every vehicle with its display status: who drives it and
// whether that driver is currently out on a mission.
func (s *vehiculeService) ListAll() ([]dtos.VehiculeResponse, error) {
	vehicules, err := s.vehiculeRepository.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dtos.VehiculeResponse, len(vehicules))
	for i, vehicule := range vehicules {
		var chauffeur *models.Chauffeur
		chauffeurs, err := s.chauffeurRepository.GetByVehiculeID(vehicule.ID)
		if err != nil {
			return nil, err
		}
		if len(chauffeurs) > 0 {
			chauffeur = &chauffeurs[0]
		}

		var current *models.Mission
		active, err := s.missionRepository.GetActiveByVehiculeID(vehicule.ID)
		if err != nil {
			return nil, err
		}
		if len(active) > 0 {
			current = &active[0]
		}

		responses[i] = dtos.VehiculeResponse{
			VehiculeDTO:     dtos.VehiculeToDTO(vehicule),
			StatutAffichage: statemachine.VehicleDisplayStatus(chauffeur, current),
		}
		if chauffeur != nil {
			dto := dtos.ChauffeurToDTO(*chauffeur)
			responses[i].Chauffeur = &dto
		}
	}
	return responses, nil
}

// ListAvailable returns vehicles that are administratively available and not
// occupied by a pending or running mission.
func (s *vehiculeService) ListAvailable() ([]models.Vehicule, error) {
	vehicules, err := s.vehiculeRepository.GetAvailable()
	if err != nil {
		return nil, err
	}

	free := make([]models.Vehicule, 0, len(vehicules))
	for _, vehicule := range vehicules {
		missions, err := s.missionRepository.GetActiveByVehiculeID(vehicule.ID)
		if err != nil {
			return nil, err
		}
		if len(missions) == 0 {
			free = append(free, vehicule)
		}
	}
	return free, nil
}
