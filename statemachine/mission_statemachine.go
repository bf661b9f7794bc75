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

// Package statemachine holds the mission and leave-request lifecycle rules:
// which transitions are valid for which actor, how each mutates the entity
// and which notifications fan out as a consequence. Everything in here is
// pure - persistence and HTTP are the callers' concern.
package statemachine

import (
	"fmt"
	"strings"

	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type Operation string

const (
	OpAccept         Operation = "accepter"
	OpRefuse         Operation = "refuser"
	OpStart          Operation = "commencer"
	OpComplete       Operation = "terminer"
	OpReportProbleme Operation = "signaler-probleme"
	OpReassign       Operation = "reassigner"
)

// InvalidTransitionError rejects an operation attempted from a state it is
// not valid in. Transitions from terminal states always fail with this error,
// never silently no-op.
type InvalidTransitionError struct {
	Op    Operation
	State string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s is not allowed in state %s", e.Op, e.State)
}

// ValidationError rejects an operation whose input is unusable before any
// state is touched - e.g. an empty refusal reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// Notice describes one notification to persist as a side effect of a
// transition. Exactly one recipient field is set.
type Notice struct {
	Type    models.NotificationType
	Message string

	ToEmploye   *int64
	ToChauffeur *int64
	ToAdmin     bool
}

func noticeForEmploye(m models.Mission, typ models.NotificationType, message string) Notice {
	employeID := m.EmployeID
	return Notice{Type: typ, Message: message, ToEmploye: &employeID}
}

// Accept marks the mission as accepted by the given chauffeur. The state
// stays EN_ATTENTE - acceptance and departure are separate steps.
func Accept(m *models.Mission, chauffeur models.Chauffeur) ([]Notice, error) {
	if m.Etat != models.EtatEnAttente || m.Acceptee {
		return nil, &InvalidTransitionError{Op: OpAccept, State: string(m.Etat)}
	}

	chauffeurID := chauffeur.ID
	m.ChauffeurID = &chauffeurID
	m.Acceptee = true

	return []Notice{noticeForEmploye(*m, models.NotificationMissionAcceptee,
		fmt.Sprintf("Mission vers %s acceptée par %s", m.Destination, chauffeur.FullName()))}, nil
}

// Refuse moves a pending, not-yet-accepted mission to the terminal REFUSEE
// state. The reason is mandatory and is forwarded to the requester.
func Refuse(m *models.Mission, raison string) ([]Notice, error) {
	if strings.TrimSpace(raison) == "" {
		return nil, &ValidationError{Field: "raison", Reason: "is required to refuse a mission"}
	}
	if m.Etat != models.EtatEnAttente || m.Acceptee {
		return nil, &InvalidTransitionError{Op: OpRefuse, State: string(m.Etat)}
	}

	m.Etat = models.EtatRefusee

	return []Notice{noticeForEmploye(*m, models.NotificationMissionRefusee,
		fmt.Sprintf("Mission vers %s refusée. Raison: %s", m.Destination, strings.TrimSpace(raison)))}, nil
}

// Start moves an accepted pending mission into the active COMMENCEE state.
func Start(m *models.Mission) ([]Notice, error) {
	if m.Etat != models.EtatEnAttente || !m.Acceptee {
		return nil, &InvalidTransitionError{Op: OpStart, State: string(m.Etat)}
	}

	m.Etat = models.EtatCommencee

	message := fmt.Sprintf("Mission vers %s commencée", m.Destination)
	if m.Chauffeur != nil {
		message = fmt.Sprintf("Mission vers %s commencée par %s", m.Destination, m.Chauffeur.FullName())
	}
	return []Notice{noticeForEmploye(*m, models.NotificationMissionCommencee, message)}, nil
}

// Complete moves an active mission to the terminal TERMINEE state. A
// completed mission cannot carry an open problem, so Probleme is cleared.
func Complete(m *models.Mission) ([]Notice, error) {
	if !m.Etat.IsActive() {
		return nil, &InvalidTransitionError{Op: OpComplete, State: string(m.Etat)}
	}

	m.Etat = models.EtatTerminee
	m.Probleme = ""

	message := fmt.Sprintf("Mission vers %s terminée", m.Destination)
	if m.Chauffeur != nil {
		message = fmt.Sprintf("Mission vers %s terminée par %s", m.Destination, m.Chauffeur.FullName())
	}
	return []Notice{noticeForEmploye(*m, models.NotificationMissionTerminee, message)}, nil
}

// ReportProbleme flags an in-progress issue on an active mission. The state
// is left unchanged and the driver stays assigned - resolving the problem by
// handing the mission to someone else is the separate Reassign operation.
func ReportProbleme(m *models.Mission, description string) ([]Notice, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &ValidationError{Field: "probleme", Reason: "description is required to report a problem"}
	}
	if !m.Etat.IsActive() {
		return nil, &InvalidTransitionError{Op: OpReportProbleme, State: string(m.Etat)}
	}

	m.Probleme = description

	message := fmt.Sprintf("Problème signalé sur la mission vers %s: %s", m.Destination, description)
	if m.Chauffeur != nil {
		message = fmt.Sprintf("Problème signalé par %s sur la mission vers %s: %s",
			m.Chauffeur.FullName(), m.Destination, description)
	}
	return []Notice{
		noticeForEmploye(*m, models.NotificationMissionProbleme, message),
		{Type: models.NotificationMissionProbleme, Message: message, ToAdmin: true},
	}, nil
}

// Reassignable reports whether a mission currently qualifies for
// reassignment: it carries an open problem, was refused, or sits pending
// without any driver.
func Reassignable(m models.Mission) bool {
	if m.HasOpenProblem() && !m.Etat.IsTerminal() {
		return true
	}
	if m.Etat == models.EtatRefusee {
		return true
	}
	return m.Etat == models.EtatEnAttente && m.ChauffeurID == nil
}

// Reassign hands the mission to a new driver and resets it to a clean
// pending state: problem cleared, acceptance withdrawn. Admin or the owning
// employee only - the caller enforces the actor.
func Reassign(m *models.Mission, newChauffeur models.Chauffeur) ([]Notice, error) {
	if !Reassignable(*m) {
		return nil, &InvalidTransitionError{Op: OpReassign, State: string(m.Etat)}
	}

	chauffeurID := newChauffeur.ID
	m.ChauffeurID = &chauffeurID
	m.Chauffeur = &newChauffeur
	m.Etat = models.EtatEnAttente
	m.Acceptee = false
	m.Probleme = ""

	return []Notice{{
		Type: models.NotificationMissionAssignee,
		Message: fmt.Sprintf("Nouvelle mission assignée: %s → %s le %s",
			m.Depart, m.Destination, m.DateHeure.Format("2006-01-02 15:04")),
		ToChauffeur: &chauffeurID,
	}}, nil
}

// AssignmentNotices is the fanout for an initial driver assignment at
// mission creation time.
func AssignmentNotices(m models.Mission) []Notice {
	notices := []Notice{}
	if m.ChauffeurID != nil {
		chauffeurID := *m.ChauffeurID
		notices = append(notices, Notice{
			Type: models.NotificationMissionAssignee,
			Message: fmt.Sprintf("Nouvelle mission assignée: %s → %s le %s",
				m.Depart, m.Destination, m.DateHeure.Format("2006-01-02 15:04")),
			ToChauffeur: &chauffeurID,
		})
	}
	return notices
}
