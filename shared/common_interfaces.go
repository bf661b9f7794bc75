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

package shared

import (
	"time"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/fleetdesk-io/fleetdesk/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type MissionRepository interface {
	utils.Repository[int64, models.Mission, DB]
	ReadWithRelations(id int64) (models.Mission, error)
	ReadForUpdate(tx DB, id int64) (models.Mission, error)
	GetAll() ([]models.Mission, error)
	GetByEmployeID(employeID int64) ([]models.Mission, error)
	GetByChauffeurID(chauffeurID int64) ([]models.Mission, error)
	GetPendingUnassigned() ([]models.Mission, error)
	GetWithOpenProblems() ([]models.Mission, error)
	GetWithOpenProblemsByEmploye(employeID int64) ([]models.Mission, error)
	CountByChauffeurAndStates(chauffeurID int64, etats []models.EtatMission) (int64, error)
	GetActiveByVehiculeID(vehiculeID int64) ([]models.Mission, error)
	UnassignPendingFromChauffeur(tx DB, chauffeurID int64) (int64, error)
}

type ChauffeurRepository interface {
	utils.Repository[int64, models.Chauffeur, DB]
	GetAll() ([]models.Chauffeur, error)
	ReadByUserID(userID uuid.UUID) (models.Chauffeur, error)
	GetByVehiculeID(vehiculeID int64) ([]models.Chauffeur, error)
	GetActive() ([]models.Chauffeur, error)
}

type EmployeRepository interface {
	utils.Repository[int64, models.Employe, DB]
	GetAll() ([]models.Employe, error)
	ReadByUserID(userID uuid.UUID) (models.Employe, error)
	ReadByEmail(email string) (models.Employe, error)
}

type VehiculeRepository interface {
	utils.Repository[int64, models.Vehicule, DB]
	GetAll() ([]models.Vehicule, error)
	GetAvailable() ([]models.Vehicule, error)
	ReadByImmatriculation(immatriculation string) (models.Vehicule, error)
}

type IndisponibiliteRepository interface {
	utils.Repository[int64, models.Indisponibilite, DB]
	ReadForUpdate(tx DB, id int64) (models.Indisponibilite, error)
	GetAll() ([]models.Indisponibilite, error)
	GetByChauffeurID(chauffeurID int64) ([]models.Indisponibilite, error)
	GetPending() ([]models.Indisponibilite, error)
	GetAcceptedOverlapping(chauffeurID int64, start, end time.Time) ([]models.Indisponibilite, error)
}

type NotificationRepository interface {
	utils.Repository[int64, models.Notification, DB]
	GetForEmploye(employeID int64) ([]models.Notification, error)
	GetForChauffeur(chauffeurID int64) ([]models.Notification, error)
	GetForAdmin() ([]models.Notification, error)
	CountUnreadForEmploye(employeID int64) (int64, error)
	CountUnreadForChauffeur(chauffeurID int64) (int64, error)
	CountUnreadForAdmin() (int64, error)
	MarkRead(tx DB, id int64) error
	MarkAllReadForEmploye(tx DB, employeID int64) error
	MarkAllReadForChauffeur(tx DB, chauffeurID int64) error
	MarkAllReadForAdmin(tx DB) error
	DeleteReadOlderThan(tx DB, days int) (int64, error)
}

type UserRepository interface {
	utils.Repository[uuid.UUID, models.User, DB]
	ReadByEmail(email string) (models.User, error)
}

type AccessTokenRepository interface {
	utils.Repository[uuid.UUID, models.AccessToken, DB]
	ReadByToken(token string) (models.AccessToken, error)
	MarkAsLastUsedNow(id uuid.UUID) error
	DeleteByUserID(tx DB, userID uuid.UUID) error
}

type ConfigRepository interface {
	GetDB(tx DB) DB
	Save(tx DB, config *models.Config) error
	Read(key string) (models.Config, error)
}

type ConfigService interface {
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
	RemoveConfig(key string) error
}

// DaemonRunner starts the periodic background jobs.
type DaemonRunner interface {
	Start()
}

type MissionService interface {
	Create(request dtos.MissionCreateRequest, employeID int64) (models.Mission, error)
	Read(id int64) (models.Mission, error)
	Update(id int64, request dtos.MissionUpdateRequest) (models.Mission, error)
	Delete(id int64) error

	ListAll() ([]models.Mission, error)
	ListByEmploye(employeID int64) ([]models.Mission, error)
	ListByChauffeur(chauffeurID int64) ([]models.Mission, error)
	ListPendingUnassigned() ([]models.Mission, error)
	ListWithProblems() ([]models.Mission, error)
	ListWithProblemsByEmploye(employeID int64) ([]models.Mission, error)

	Accept(missionID int64, chauffeurID int64) (models.Mission, error)
	Refuse(missionID int64, chauffeurID int64, raison string) (models.Mission, error)
	Start(missionID int64, chauffeurID int64) (models.Mission, error)
	Complete(missionID int64, chauffeurID int64) (models.Mission, error)
	ReportProbleme(missionID int64, chauffeurID int64, description string) (models.Mission, error)
	Reassign(missionID int64, newChauffeurID int64) (models.Mission, error)
	ReassignForEmploye(missionID int64, employeID int64, newChauffeurID int64) (models.Mission, error)
}

type LeaveService interface {
	Create(request dtos.CongeCreateRequest, chauffeurID int64) (models.Indisponibilite, error)
	Read(id int64) (models.Indisponibilite, error)
	ListAll() ([]models.Indisponibilite, error)
	ListPending() ([]models.Indisponibilite, error)
	ListByChauffeur(chauffeurID int64) ([]models.Indisponibilite, error)
	Accept(id int64) (models.Indisponibilite, error)
	Refuse(id int64, raison string) (models.Indisponibilite, error)
}

// NotificationActor scopes notification queries to one inbox: an employee,
// a driver or the shared admin feed.
type NotificationActor struct {
	EmployeID   *int64
	ChauffeurID *int64
	Admin       bool
}

type NotificationService interface {
	ListFor(actor NotificationActor) ([]models.Notification, error)
	UnreadCount(actor NotificationActor) (int64, error)
	MarkRead(actor NotificationActor, id int64) error
	MarkAllRead(actor NotificationActor) error
	Delete(actor NotificationActor, id int64) error

	// PersistNotices writes the fanout of a state transition inside the
	// caller's transaction.
	PersistNotices(tx DB, notices []statemachine.Notice, missionID *int64, indisponibiliteID *int64) error
}

type ChauffeurService interface {
	Create(request dtos.ChauffeurCreateRequest) (models.Chauffeur, error)
	Read(id int64) (models.Chauffeur, error)
	Update(id int64, request dtos.ChauffeurUpdateRequest) (models.Chauffeur, error)
	Delete(id int64) (dtos.ChauffeurDeletionResult, error)
	ListAll() ([]models.Chauffeur, error)
	ListAvailable() ([]models.Chauffeur, error)
	Availability(chauffeurID int64) (statemachine.StatutChauffeur, error)
}

type EmployeService interface {
	Create(request dtos.EmployeCreateRequest) (models.Employe, error)
	Read(id int64) (models.Employe, error)
	Update(id int64, request dtos.EmployeUpdateRequest) (models.Employe, error)
	Delete(id int64) error
	ListAll() ([]models.Employe, error)
}

type VehiculeService interface {
	Create(request dtos.VehiculeCreateRequest) (models.Vehicule, error)
	Read(id int64) (models.Vehicule, error)
	Update(id int64, request dtos.VehiculeUpdateRequest) (models.Vehicule, error)
	Delete(id int64) error
	ListAll() ([]dtos.VehiculeResponse, error)
	ListAvailable() ([]models.Vehicule, error)
}

type AuthService interface {
	Login(request dtos.LoginRequest) (dtos.LoginResponse, error)
	Logout(token string) error
	VerifyToken(token string) (models.User, error)
	CreateUser(request dtos.UserCreateRequest) (models.User, error)
}

type StatsService interface {
	AdminDashboard() (dtos.DashboardStats, error)
	ForEmploye(employeID int64) (statemachine.MissionStats, error)
	ForChauffeur(chauffeurID int64) (statemachine.MissionStats, error)
}

type AccessControl interface {
	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error
	GetAllRoles(subject string) []string

	AllowRole(role Role, object Object, action []Action) error
	IsAllowed(subject string, object Object, action Action) (bool, error)
}

type RBACProvider interface {
	GetRBAC() AccessControl
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmploye   Role = "employe"
	RoleChauffeur Role = "chauffeur"
)

func RoleFromUser(u models.User) Role {
	switch u.Role {
	case models.RoleAdmin:
		return RoleAdmin
	case models.RoleChauffeur:
		return RoleChauffeur
	default:
		return RoleEmploye
	}
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectMission   Object = "mission"
	ObjectChauffeur Object = "chauffeur"
	ObjectEmploye   Object = "employe"
	ObjectVehicule  Object = "vehicule"
	ObjectConge     Object = "conge"
	ObjectUser      Object = "user"
)
