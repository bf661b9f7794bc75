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
	"fmt"
	"strings"

	"github.com/fleetdesk-io/fleetdesk/database/models"
)

// EffectiveLeaveStatus resolves the display/transition status of a leave
// request. Rows written before the tri-state statut column existed carry
// only the boolean acceptee flag; those fall back to acceptee ? ACCEPTEE :
// EN_ATTENTE.
func EffectiveLeaveStatus(i models.Indisponibilite) models.StatutConge {
	if i.Statut != "" {
		return i.Statut
	}
	if i.Acceptee {
		return models.CongeAcceptee
	}
	return models.CongeEnAttente
}

// LeavePending reports whether the request is still eligible for an admin
// decision. ACCEPTEE and REFUSEE are both terminal.
func LeavePending(i models.Indisponibilite) bool {
	return EffectiveLeaveStatus(i) == models.CongeEnAttente
}

// AcceptLeave transitions a pending request to the terminal ACCEPTEE state.
func AcceptLeave(i *models.Indisponibilite) ([]Notice, error) {
	if !LeavePending(*i) {
		return nil, &InvalidTransitionError{Op: "accepter-conge", State: string(EffectiveLeaveStatus(*i))}
	}

	i.Statut = models.CongeAcceptee
	i.Acceptee = true

	chauffeurID := i.ChauffeurID
	return []Notice{{
		Type: models.NotificationCongeAccepte,
		Message: fmt.Sprintf("Votre demande de congé du %s au %s a été acceptée.",
			i.DateDebut.Format("2006-01-02"), i.DateFin.Format("2006-01-02")),
		ToChauffeur: &chauffeurID,
	}}, nil
}

// RefuseLeave transitions a pending request to the terminal REFUSEE state.
// A reason is mandatory and is forwarded to the driver.
func RefuseLeave(i *models.Indisponibilite, raison string) ([]Notice, error) {
	raison = strings.TrimSpace(raison)
	if raison == "" {
		return nil, &ValidationError{Field: "raison", Reason: "is required to refuse a leave request"}
	}
	if !LeavePending(*i) {
		return nil, &InvalidTransitionError{Op: "refuser-conge", State: string(EffectiveLeaveStatus(*i))}
	}

	i.Statut = models.CongeRefusee
	i.Acceptee = false

	chauffeurID := i.ChauffeurID
	return []Notice{{
		Type: models.NotificationCongeRefuse,
		Message: fmt.Sprintf("Votre demande de congé du %s au %s a été refusée. Raison: %s",
			i.DateDebut.Format("2006-01-02"), i.DateFin.Format("2006-01-02"), raison),
		ToChauffeur: &chauffeurID,
	}}, nil
}

// LeaveRequestNotices is the admin-side fanout for a freshly filed request.
func LeaveRequestNotices(i models.Indisponibilite, chauffeur models.Chauffeur) []Notice {
	return []Notice{{
		Type: models.NotificationDemandeConge,
		Message: fmt.Sprintf("Nouvelle demande de congé de %s du %s au %s",
			chauffeur.FullName(), i.DateDebut.Format("2006-01-02"), i.DateFin.Format("2006-01-02")),
		ToAdmin: true,
	}}
}
