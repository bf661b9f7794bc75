package dtos

import (
	"github.com/fleetdesk-io/fleetdesk/statemachine"
)

// DashboardStats is the admin landing-page aggregate.
type DashboardStats struct {
	Missions statemachine.MissionStats `json:"missions"`

	TotalChauffeurs      int64 `json:"totalChauffeurs"`
	ChauffeursEnMission  int64 `json:"chauffeursEnMission"`
	ChauffeursDisponible int64 `json:"chauffeursDisponibles"`

	TotalVehicules      int64 `json:"totalVehicules"`
	VehiculesDisponible int64 `json:"vehiculesDisponibles"`

	DemandesCongeEnAttente int64 `json:"demandesCongeEnAttente"`
	MissionsAvecProbleme   int64 `json:"missionsAvecProbleme"`
}
