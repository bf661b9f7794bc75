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
	"github.com/fleetdesk-io/fleetdesk/monitoring"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
)

type leaveService struct {
	indisponibiliteRepository shared.IndisponibiliteRepository
	chauffeurRepository       shared.ChauffeurRepository
	missionRepository         shared.MissionRepository
	notificationService       shared.NotificationService
}

func NewLeaveService(
	indisponibiliteRepository shared.IndisponibiliteRepository,
	chauffeurRepository shared.ChauffeurRepository,
	missionRepository shared.MissionRepository,
	notificationService shared.NotificationService,
) *leaveService {
	return &leaveService{
		indisponibiliteRepository: indisponibiliteRepository,
		chauffeurRepository:       chauffeurRepository,
		missionRepository:         missionRepository,
		notificationService:       notificationService,
	}
}

func (s *leaveService) Create(request dtos.CongeCreateRequest, chauffeurID int64) (models.Indisponibilite, error) {
	chauffeur, err := s.chauffeurRepository.Read(chauffeurID)
	if err != nil {
		return models.Indisponibilite{}, echo.NewHTTPError(404, "chauffeur not found").WithInternal(err)
	}
	if request.DateFin.Before(request.DateDebut) {
		return models.Indisponibilite{}, &statemachine.ValidationError{Field: "dateFin", Reason: "must not be before dateDebut"}
	}

	leave := models.Indisponibilite{
		ChauffeurID: chauffeur.ID,
		DateDebut:   request.DateDebut,
		DateFin:     request.DateFin,
		Type:        models.TypeConge(request.Type),
		Raison:      request.Raison,
		Statut:      models.CongeEnAttente,
	}

	err = s.indisponibiliteRepository.Transaction(func(tx shared.DB) error {
		if err := s.indisponibiliteRepository.Create(tx, &leave); err != nil {
			return err
		}
		notices := statemachine.LeaveRequestNotices(leave, chauffeur)
		return s.notificationService.PersistNotices(tx, notices, nil, &leave.ID)
	})
	if err != nil {
		return models.Indisponibilite{}, err
	}
	return leave, nil
}

func (s *leaveService) Read(id int64) (models.Indisponibilite, error) {
	return s.indisponibiliteRepository.Read(id)
}

func (s *leaveService) ListAll() ([]models.Indisponibilite, error) {
	return s.indisponibiliteRepository.GetAll()
}

func (s *leaveService) ListPending() ([]models.Indisponibilite, error) {
	return s.indisponibiliteRepository.GetPending()
}

func (s *leaveService) ListByChauffeur(chauffeurID int64) ([]models.Indisponibilite, error) {
	return s.indisponibiliteRepository.GetByChauffeurID(chauffeurID)
}

func (s *leaveService) decide(id int64, outcome string, step func(tx shared.DB, i *models.Indisponibilite) ([]statemachine.Notice, error)) (models.Indisponibilite, error) {
	var leave models.Indisponibilite
	err := s.indisponibiliteRepository.Transaction(func(tx shared.DB) error {
		i, err := s.indisponibiliteRepository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}
		notices, err := step(tx, &i)
		if err != nil {
			return err
		}
		if err := s.indisponibiliteRepository.Save(tx, &i); err != nil {
			return err
		}
		if err := s.notificationService.PersistNotices(tx, notices, nil, &i.ID); err != nil {
			return err
		}
		leave = i
		return nil
	})
	if err != nil {
		return models.Indisponibilite{}, err
	}
	monitoring.LeaveDecisionsTotal.WithLabelValues(outcome).Inc()
	return leave, nil
}

// Accept grants the leave. When the driver has no mission left in the
// pending or running states they are deactivated in the same transaction, so
// dispatchers stop assigning them while they are away.
func (s *leaveService) Accept(id int64) (models.Indisponibilite, error) {
	return s.decide(id, "accepted", func(tx shared.DB, i *models.Indisponibilite) ([]statemachine.Notice, error) {
		notices, err := statemachine.AcceptLeave(i)
		if err != nil {
			return nil, err
		}
		if err := s.deactivateIdleChauffeur(tx, i.ChauffeurID); err != nil {
			return nil, err
		}
		return notices, nil
	})
}

func (s *leaveService) deactivateIdleChauffeur(tx shared.DB, chauffeurID int64) error {
	count, err := s.missionRepository.CountByChauffeurAndStates(chauffeurID, []models.EtatMission{
		models.EtatEnAttente, models.EtatCommencee, models.EtatEnCours,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	chauffeur, err := s.chauffeurRepository.Read(chauffeurID)
	if err != nil {
		return err
	}
	if !chauffeur.Actif {
		return nil
	}
	chauffeur.Actif = false
	return s.chauffeurRepository.Save(tx, &chauffeur)
}

func (s *leaveService) Refuse(id int64, raison string) (models.Indisponibilite, error) {
	return s.decide(id, "refused", func(tx shared.DB, i *models.Indisponibilite) ([]statemachine.Notice, error) {
		return statemachine.RefuseLeave(i, raison)
	})
}
