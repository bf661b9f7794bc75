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

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
)

type chauffeurService struct {
	chauffeurRepository shared.ChauffeurRepository
	missionRepository   shared.MissionRepository
	userRepository      shared.UserRepository
}

func NewChauffeurService(
	chauffeurRepository shared.ChauffeurRepository,
	missionRepository shared.MissionRepository,
	userRepository shared.UserRepository,
) *chauffeurService {
	return &chauffeurService{
		chauffeurRepository: chauffeurRepository,
		missionRepository:   missionRepository,
		userRepository:      userRepository,
	}
}

func (s *chauffeurService) Create(request dtos.ChauffeurCreateRequest) (models.Chauffeur, error) {
	chauffeur := models.Chauffeur{
		Nom:          request.Nom,
		Prenom:       request.Prenom,
		Telephone:    request.Telephone,
		Actif:        true,
		DateEmbauche: request.DateEmbauche,
		VehiculeID:   request.VehiculeID,
	}

	err := s.chauffeurRepository.Transaction(func(tx shared.DB) error {
		if err := s.chauffeurRepository.Create(tx, &chauffeur); err != nil {
			return err
		}

		// optionally provision a login for the new driver
		if request.Email != "" && request.Password != "" {
			user := models.User{
				Email:       request.Email,
				Role:        models.RoleChauffeur,
				ChauffeurID: &chauffeur.ID,
			}
			if err := user.SetPassword(request.Password); err != nil {
				return err
			}
			if err := s.userRepository.Create(tx, &user); err != nil {
				return err
			}
			chauffeur.UserID = &user.ID
			return s.chauffeurRepository.Save(tx, &chauffeur)
		}
		return nil
	})
	if err != nil {
		return models.Chauffeur{}, err
	}
	return chauffeur, nil
}

func (s *chauffeurService) Read(id int64) (models.Chauffeur, error) {
	return s.chauffeurRepository.Read(id)
}

func (s *chauffeurService) Update(id int64, request dtos.ChauffeurUpdateRequest) (models.Chauffeur, error) {
	chauffeur, err := s.chauffeurRepository.Read(id)
	if err != nil {
		return models.Chauffeur{}, err
	}

	if request.Nom != nil {
		chauffeur.Nom = *request.Nom
	}
	if request.Prenom != nil {
		chauffeur.Prenom = *request.Prenom
	}
	if request.Telephone != nil {
		chauffeur.Telephone = *request.Telephone
	}
	if request.Actif != nil {
		chauffeur.Actif = *request.Actif
	}
	if request.VehiculeID != nil {
		chauffeur.VehiculeID = request.VehiculeID
	}

	if err := s.chauffeurRepository.Save(nil, &chauffeur); err != nil {
		return models.Chauffeur{}, err
	}
	return chauffeur, nil
}

// Delete removes a driver. Drivers on an active mission cannot be deleted;
// drivers with only pending assignments are deleted after those missions are
// released back to the unassigned pool.
func (s *chauffeurService) Delete(id int64) (dtos.ChauffeurDeletionResult, error) {
	if _, err := s.chauffeurRepository.Read(id); err != nil {
		return dtos.ChauffeurDeletionResult{}, err
	}

	pending, err := s.missionRepository.CountByChauffeurAndStates(id, []models.EtatMission{models.EtatEnAttente})
	if err != nil {
		return dtos.ChauffeurDeletionResult{}, err
	}
	active, err := s.missionRepository.CountByChauffeurAndStates(id, []models.EtatMission{models.EtatCommencee, models.EtatEnCours})
	if err != nil {
		return dtos.ChauffeurDeletionResult{}, err
	}

	decision := statemachine.DriverDeletionGuard(int(pending), int(active))
	if decision == statemachine.DeletionBlocked {
		return dtos.ChauffeurDeletionResult{}, echo.NewHTTPError(409, "chauffeur has missions in progress").
			WithInternal(fmt.Errorf("chauffeur %d has %d active missions", id, active))
	}

	result := dtos.ChauffeurDeletionResult{Deleted: true}
	err = s.chauffeurRepository.Transaction(func(tx shared.DB) error {
		if decision == statemachine.DeletionAllowedWithWarning {
			released, err := s.missionRepository.UnassignPendingFromChauffeur(tx, id)
			if err != nil {
				return err
			}
			result.ReleasedMissions = released
			result.Warning = fmt.Sprintf("%d pending missions were released back to the unassigned pool", released)
		}
		return s.chauffeurRepository.Delete(tx, id)
	})
	if err != nil {
		return dtos.ChauffeurDeletionResult{}, err
	}
	return result, nil
}

func (s *chauffeurService) ListAll() ([]models.Chauffeur, error) {
	return s.chauffeurRepository.GetAll()
}

// ListAvailable returns active drivers that are not engaged by any pending or
// running mission.
func (s *chauffeurService) ListAvailable() ([]models.Chauffeur, error) {
	chauffeurs, err := s.chauffeurRepository.GetActive()
	if err != nil {
		return nil, err
	}

	available := make([]models.Chauffeur, 0, len(chauffeurs))
	for _, chauffeur := range chauffeurs {
		missions, err := s.missionRepository.GetByChauffeurID(chauffeur.ID)
		if err != nil {
			return nil, err
		}
		if statemachine.DriverAvailability(chauffeur, missions) == statemachine.ChauffeurDisponible {
			available = append(available, chauffeur)
		}
	}
	return available, nil
}

func (s *chauffeurService) Availability(chauffeurID int64) (statemachine.StatutChauffeur, error) {
	chauffeur, err := s.chauffeurRepository.Read(chauffeurID)
	if err != nil {
		return "", err
	}
	missions, err := s.missionRepository.GetByChauffeurID(chauffeurID)
	if err != nil {
		return "", err
	}
	return statemachine.DriverAvailability(chauffeur, missions), nil
}
