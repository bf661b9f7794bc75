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

package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/fleetdesk-io/fleetdesk/statemachine"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubMissionService struct {
	shared.MissionService

	mission models.Mission
	err     error

	lastMissionID   int64
	lastChauffeurID int64
	lastEmployeID   int64
	lastRaison      string

	missions []models.Mission
}

func (s *stubMissionService) Accept(missionID int64, chauffeurID int64) (models.Mission, error) {
	s.lastMissionID = missionID
	s.lastChauffeurID = chauffeurID
	return s.mission, s.err
}

func (s *stubMissionService) Refuse(missionID int64, chauffeurID int64, raison string) (models.Mission, error) {
	s.lastMissionID = missionID
	s.lastChauffeurID = chauffeurID
	s.lastRaison = raison
	return s.mission, s.err
}

func (s *stubMissionService) ListByChauffeur(chauffeurID int64) ([]models.Mission, error) {
	s.lastChauffeurID = chauffeurID
	return s.missions, s.err
}

func (s *stubMissionService) ReassignForEmploye(missionID int64, employeID int64, newChauffeurID int64) (models.Mission, error) {
	s.lastMissionID = missionID
	s.lastEmployeID = employeID
	s.lastChauffeurID = newChauffeurID
	return s.mission, s.err
}

func newTransitionContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("missionID")
	ctx.SetParamValues("42")
	shared.SetChauffeur(ctx, models.Chauffeur{ID: 7, Nom: "Martin", Prenom: "Luc"})
	return ctx, rec
}

func TestMissionControllerAccept(t *testing.T) {
	e := echo.New()

	t.Run("should pass the session chauffeur and mission id to the service", func(t *testing.T) {
		service := &stubMissionService{mission: models.Mission{ID: 42, Etat: models.EtatEnAttente, Acceptee: true}}
		controller := NewMissionController(service)

		ctx, rec := newTransitionContext(e, "")
		err := controller.Accept(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), service.lastMissionID)
		assert.Equal(t, int64(7), service.lastChauffeurID)
	})

	t.Run("should map an invalid transition to 409", func(t *testing.T) {
		service := &stubMissionService{err: &statemachine.InvalidTransitionError{Op: "accepter", State: "TERMINEE"}}
		controller := NewMissionController(service)

		ctx, _ := newTransitionContext(e, "")
		err := controller.Accept(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 409, httpErr.Code)
	})

	t.Run("should reject a non-numeric mission id", func(t *testing.T) {
		controller := NewMissionController(&stubMissionService{})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("missionID")
		ctx.SetParamValues("not-a-number")

		err := controller.Accept(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestMissionControllerRefuse(t *testing.T) {
	e := echo.New()

	t.Run("should forward the trimmed plain-text reason", func(t *testing.T) {
		service := &stubMissionService{mission: models.Mission{ID: 42, Etat: models.EtatRefusee}}
		controller := NewMissionController(service)

		ctx, rec := newTransitionContext(e, "  véhicule en panne \n")
		err := controller.Refuse(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "véhicule en panne", service.lastRaison)
	})

	t.Run("should map a missing reason to 400", func(t *testing.T) {
		service := &stubMissionService{err: &statemachine.ValidationError{Field: "raison", Reason: "refusal requires a reason"}}
		controller := NewMissionController(service)

		ctx, _ := newTransitionContext(e, "")
		err := controller.Refuse(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestMissionControllerListForChauffeur(t *testing.T) {
	e := echo.New()

	t.Run("should return the driver's mission history", func(t *testing.T) {
		service := &stubMissionService{missions: []models.Mission{{ID: 1}, {ID: 2}}}
		controller := NewMissionController(service)

		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		ctx.SetParamNames("chauffeurID")
		ctx.SetParamValues("7")

		assert.NoError(t, controller.ListForChauffeur(ctx))
		assert.Equal(t, int64(7), service.lastChauffeurID)
	})

	t.Run("should reject a non-numeric chauffeur id", func(t *testing.T) {
		controller := NewMissionController(&stubMissionService{})

		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		ctx.SetParamNames("chauffeurID")
		ctx.SetParamValues("seven")

		err := controller.ListForChauffeur(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestMissionControllerReassignMine(t *testing.T) {
	e := echo.New()

	t.Run("should act on behalf of the session employe", func(t *testing.T) {
		service := &stubMissionService{mission: models.Mission{ID: 42}}
		controller := NewMissionController(service)

		req := httptest.NewRequest(http.MethodPost, "/?chauffeurId=9", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("missionID")
		ctx.SetParamValues("42")
		shared.SetEmploye(ctx, models.Employe{ID: 3, Nom: "Gharbi", Prenom: "Amal"})

		assert.NoError(t, controller.ReassignMine(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), service.lastMissionID)
		assert.Equal(t, int64(3), service.lastEmployeID)
		assert.Equal(t, int64(9), service.lastChauffeurID)
	})

	t.Run("should reject a missing chauffeurId parameter", func(t *testing.T) {
		controller := NewMissionController(&stubMissionService{})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("missionID")
		ctx.SetParamValues("42")
		shared.SetEmploye(ctx, models.Employe{ID: 3})

		err := controller.ReassignMine(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestHTTPErrorMapping(t *testing.T) {
	t.Run("should keep an existing echo.HTTPError untouched", func(t *testing.T) {
		original := echo.NewHTTPError(403, "not your mission")
		assert.Equal(t, original, httpError(original, "fallback"))
	})

	t.Run("should map unknown errors to 500 with the fallback message", func(t *testing.T) {
		err := httpError(assert.AnError, "could not accept mission")

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 500, httpErr.Code)
		assert.Equal(t, "could not accept mission", httpErr.Message)
	})
}

func TestActorFromContext(t *testing.T) {
	e := echo.New()

	t.Run("should route an admin to the admin inbox", func(t *testing.T) {
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		shared.SetUser(ctx, models.User{Role: models.RoleAdmin})

		actor := actorFromContext(ctx)
		assert.True(t, actor.Admin)
		assert.Nil(t, actor.EmployeID)
		assert.Nil(t, actor.ChauffeurID)
	})

	t.Run("should route a chauffeur to their own inbox", func(t *testing.T) {
		ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		chauffeurID := int64(7)
		shared.SetUser(ctx, models.User{Role: models.RoleChauffeur, ChauffeurID: &chauffeurID})

		actor := actorFromContext(ctx)
		assert.False(t, actor.Admin)
		assert.Equal(t, &chauffeurID, actor.ChauffeurID)
	})
}
