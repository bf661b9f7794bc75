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
	"github.com/fleetdesk-io/fleetdesk/monitoring"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
)

type missionService struct {
	missionRepository         shared.MissionRepository
	chauffeurRepository       shared.ChauffeurRepository
	vehiculeRepository        shared.VehiculeRepository
	indisponibiliteRepository shared.IndisponibiliteRepository
	notificationService       shared.NotificationService
}

func NewMissionService(
	missionRepository shared.MissionRepository,
	chauffeurRepository shared.ChauffeurRepository,
	vehiculeRepository shared.VehiculeRepository,
	indisponibiliteRepository shared.IndisponibiliteRepository,
	notificationService shared.NotificationService,
) *missionService {
	return &missionService{
		missionRepository:         missionRepository,
		chauffeurRepository:       chauffeurRepository,
		vehiculeRepository:        vehiculeRepository,
		indisponibiliteRepository: indisponibiliteRepository,
		notificationService:       notificationService,
	}
}

func (s *missionService) Create(request dtos.MissionCreateRequest, employeID int64) (models.Mission, error) {
	mission := models.Mission{
		Depart:       request.Depart,
		Destination:  request.Destination,
		DateHeure:    request.DateHeure,
		TypeMission:  models.TypeMission(request.Type),
		Instructions: request.Instructions,
		Etat:         models.EtatEnAttente,
		EmployeID:    employeID,
		VehiculeID:   request.VehiculeID,
	}

	if request.ChauffeurID != nil {
		chauffeur, err := s.chauffeurRepository.Read(*request.ChauffeurID)
		if err != nil {
			return models.Mission{}, echo.NewHTTPError(404, "chauffeur not found").WithInternal(err)
		}
		if !chauffeur.Actif {
			return models.Mission{}, &statemachine.ValidationError{Field: "chauffeurId", Reason: "chauffeur is inactive"}
		}
		leave, err := s.indisponibiliteRepository.GetAcceptedOverlapping(chauffeur.ID, request.DateHeure, request.DateHeure)
		if err != nil {
			return models.Mission{}, err
		}
		if len(leave) > 0 {
			return models.Mission{}, &statemachine.ValidationError{Field: "chauffeurId", Reason: "chauffeur is on leave at that date"}
		}
		mission.ChauffeurID = request.ChauffeurID
	}

	if request.VehiculeID != nil {
		vehicule, err := s.vehiculeRepository.Read(*request.VehiculeID)
		if err != nil {
			return models.Mission{}, echo.NewHTTPError(404, "vehicule not found").WithInternal(err)
		}
		if !vehicule.Disponible {
			return models.Mission{}, &statemachine.ValidationError{Field: "vehiculeId", Reason: "vehicule is not available"}
		}
	}

	err := s.missionRepository.Transaction(func(tx shared.DB) error {
		if err := s.missionRepository.Create(tx, &mission); err != nil {
			return err
		}
		notices := statemachine.AssignmentNotices(mission)
		return s.notificationService.PersistNotices(tx, notices, &mission.ID, nil)
	})
	if err != nil {
		return models.Mission{}, err
	}

	monitoring.MissionsCreatedTotal.Inc()
	return s.missionRepository.ReadWithRelations(mission.ID)
}

func (s *missionService) Read(id int64) (models.Mission, error) {
	return s.missionRepository.ReadWithRelations(id)
}

func (s *missionService) Update(id int64, request dtos.MissionUpdateRequest) (models.Mission, error) {
	mission, err := s.missionRepository.Read(id)
	if err != nil {
		return models.Mission{}, err
	}
	if mission.Etat != models.EtatEnAttente {
		return models.Mission{}, &statemachine.InvalidTransitionError{Op: "modifier", State: string(mission.Etat)}
	}

	if request.Depart != nil {
		mission.Depart = *request.Depart
	}
	if request.Destination != nil {
		mission.Destination = *request.Destination
	}
	if request.DateHeure != nil {
		mission.DateHeure = *request.DateHeure
	}
	if request.Type != nil {
		mission.TypeMission = models.TypeMission(*request.Type)
	}
	if request.Instructions != nil {
		mission.Instructions = *request.Instructions
	}
	if request.VehiculeID != nil {
		if _, err := s.vehiculeRepository.Read(*request.VehiculeID); err != nil {
			return models.Mission{}, echo.NewHTTPError(404, "vehicule not found").WithInternal(err)
		}
		mission.VehiculeID = request.VehiculeID
	}

	if err := s.missionRepository.Save(nil, &mission); err != nil {
		return models.Mission{}, err
	}
	return s.missionRepository.ReadWithRelations(mission.ID)
}

func (s *missionService) Delete(id int64) error {
	mission, err := s.missionRepository.Read(id)
	if err != nil {
		return err
	}
	if mission.Etat.IsActive() {
		return echo.NewHTTPError(409, "missions in progress cannot be deleted").WithInternal(fmt.Errorf("mission %d is %s", id, mission.Etat))
	}
	return s.missionRepository.Delete(nil, id)
}

func (s *missionService) ListAll() ([]models.Mission, error) {
	return s.missionRepository.GetAll()
}

func (s *missionService) ListByEmploye(employeID int64) ([]models.Mission, error) {
	return s.missionRepository.GetByEmployeID(employeID)
}

func (s *missionService) ListByChauffeur(chauffeurID int64) ([]models.Mission, error) {
	return s.missionRepository.GetByChauffeurID(chauffeurID)
}

func (s *missionService) ListPendingUnassigned() ([]models.Mission, error) {
	return s.missionRepository.GetPendingUnassigned()
}

func (s *missionService) ListWithProblems() ([]models.Mission, error) {
	return s.missionRepository.GetWithOpenProblems()
}

func (s *missionService) ListWithProblemsByEmploye(employeID int64) ([]models.Mission, error) {
	return s.missionRepository.GetWithOpenProblemsByEmploye(employeID)
}

// transition runs a single state machine step inside one transaction: load,
// mutate, save, fan out the notices.
func (s *missionService) transition(missionID int64, op statemachine.Operation, step func(m *models.Mission) ([]statemachine.Notice, error)) (models.Mission, error) {
	var mission models.Mission
	err := s.missionRepository.Transaction(func(tx shared.DB) error {
		m, err := s.missionRepository.ReadForUpdate(tx, missionID)
		if err != nil {
			return err
		}
		notices, err := step(&m)
		if err != nil {
			return err
		}
		if err := s.missionRepository.Save(tx, &m); err != nil {
			return err
		}
		if err := s.notificationService.PersistNotices(tx, notices, &m.ID, nil); err != nil {
			return err
		}
		mission = m
		return nil
	})

	monitoring.MissionTransitionsTotal.WithLabelValues(string(op), transitionOutcome(err)).Inc()
	if err != nil {
		return models.Mission{}, err
	}
	return s.missionRepository.ReadWithRelations(mission.ID)
}

func transitionOutcome(err error) string {
	switch err.(type) {
	case nil:
		return "success"
	case *statemachine.InvalidTransitionError:
		return "invalid"
	case *statemachine.ValidationError:
		return "invalid"
	default:
		return "error"
	}
}

// requireAssignedChauffeur guards the driver-side transitions: the acting
// chauffeur must be the one the mission is assigned to.
func requireAssignedChauffeur(m models.Mission, chauffeurID int64) error {
	if m.ChauffeurID == nil || *m.ChauffeurID != chauffeurID {
		return echo.NewHTTPError(403, "mission is not assigned to this chauffeur").WithInternal(fmt.Errorf("mission %d is not assigned to chauffeur %d", m.ID, chauffeurID))
	}
	return nil
}

func (s *missionService) Accept(missionID int64, chauffeurID int64) (models.Mission, error) {
	chauffeur, err := s.chauffeurRepository.Read(chauffeurID)
	if err != nil {
		return models.Mission{}, echo.NewHTTPError(404, "chauffeur not found").WithInternal(err)
	}

	return s.transition(missionID, statemachine.OpAccept, func(m *models.Mission) ([]statemachine.Notice, error) {
		if m.ChauffeurID != nil && *m.ChauffeurID != chauffeurID {
			return nil, echo.NewHTTPError(403, "mission is assigned to another chauffeur").WithInternal(fmt.Errorf("mission %d is assigned to chauffeur %d", m.ID, *m.ChauffeurID))
		}
		return statemachine.Accept(m, chauffeur)
	})
}

func (s *missionService) Refuse(missionID int64, chauffeurID int64, raison string) (models.Mission, error) {
	return s.transition(missionID, statemachine.OpRefuse, func(m *models.Mission) ([]statemachine.Notice, error) {
		if m.ChauffeurID != nil && *m.ChauffeurID != chauffeurID {
			return nil, echo.NewHTTPError(403, "mission is assigned to another chauffeur").WithInternal(fmt.Errorf("mission %d is assigned to chauffeur %d", m.ID, *m.ChauffeurID))
		}
		return statemachine.Refuse(m, raison)
	})
}

func (s *missionService) Start(missionID int64, chauffeurID int64) (models.Mission, error) {
	return s.transition(missionID, statemachine.OpStart, func(m *models.Mission) ([]statemachine.Notice, error) {
		if err := requireAssignedChauffeur(*m, chauffeurID); err != nil {
			return nil, err
		}
		return statemachine.Start(m)
	})
}

func (s *missionService) Complete(missionID int64, chauffeurID int64) (models.Mission, error) {
	return s.transition(missionID, statemachine.OpComplete, func(m *models.Mission) ([]statemachine.Notice, error) {
		if err := requireAssignedChauffeur(*m, chauffeurID); err != nil {
			return nil, err
		}
		return statemachine.Complete(m)
	})
}

func (s *missionService) ReportProbleme(missionID int64, chauffeurID int64, description string) (models.Mission, error) {
	return s.transition(missionID, statemachine.OpReportProbleme, func(m *models.Mission) ([]statemachine.Notice, error) {
		if err := requireAssignedChauffeur(*m, chauffeurID); err != nil {
			return nil, err
		}
		return statemachine.ReportProbleme(m, description)
	})
}

func (s *missionService) reassign(missionID int64, newChauffeurID int64, guard func(m models.Mission) error) (models.Mission, error) {
	chauffeur, err := s.chauffeurRepository.Read(newChauffeurID)
	if err != nil {
		return models.Mission{}, echo.NewHTTPError(404, "chauffeur not found").WithInternal(err)
	}
	if !chauffeur.Actif {
		return models.Mission{}, &statemachine.ValidationError{Field: "chauffeurId", Reason: "chauffeur is inactive"}
	}

	return s.transition(missionID, statemachine.OpReassign, func(m *models.Mission) ([]statemachine.Notice, error) {
		if guard != nil {
			if err := guard(*m); err != nil {
				return nil, err
			}
		}
		return statemachine.Reassign(m, chauffeur)
	})
}

func (s *missionService) Reassign(missionID int64, newChauffeurID int64) (models.Mission, error) {
	return s.reassign(missionID, newChauffeurID, nil)
}

// ReassignForEmploye lets the requesting employe hand their own mission to
// another driver. Missions of other employes come back as 403.
func (s *missionService) ReassignForEmploye(missionID int64, employeID int64, newChauffeurID int64) (models.Mission, error) {
	return s.reassign(missionID, newChauffeurID, func(m models.Mission) error {
		if m.EmployeID != employeID {
			return echo.NewHTTPError(403, "mission belongs to another employe").WithInternal(fmt.Errorf("mission %d belongs to employe %d", m.ID, m.EmployeID))
		}
		return nil
	})
}
