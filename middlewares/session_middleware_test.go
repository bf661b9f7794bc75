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

package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	user models.User
	err  error
}

func (s stubAuthService) Login(dtos.LoginRequest) (dtos.LoginResponse, error) {
	return dtos.LoginResponse{}, nil
}
func (s stubAuthService) Logout(string) error { return nil }
func (s stubAuthService) VerifyToken(string) (models.User, error) {
	return s.user, s.err
}
func (s stubAuthService) CreateUser(dtos.UserCreateRequest) (models.User, error) {
	return models.User{}, nil
}

type stubRBAC struct{}

func (stubRBAC) InheritRole(shared.Role, shared.Role) error { return nil }
func (stubRBAC) GrantRole(string, shared.Role) error        { return nil }
func (stubRBAC) RevokeRole(string, shared.Role) error       { return nil }
func (stubRBAC) GetAllRoles(string) []string                { return nil }
func (stubRBAC) AllowRole(shared.Role, shared.Object, []shared.Action) error {
	return nil
}
func (stubRBAC) IsAllowed(string, shared.Object, shared.Action) (bool, error) {
	return true, nil
}

type stubRBACProvider struct{}

func (stubRBACProvider) GetRBAC() shared.AccessControl { return stubRBAC{} }

func newTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the user and session for a valid bearer token", func(t *testing.T) {
		user := models.User{ID: uuid.New(), Email: "amal@fleetdesk.example", Role: models.RoleEmploye}
		mw := SessionMiddleware(stubAuthService{user: user}, stubRBACProvider{})

		ctx := newTestContext("Bearer sometoken")
		var called bool
		err := mw(func(c echo.Context) error {
			called = true
			assert.Equal(t, user.ID, shared.GetUser(c).ID)
			assert.Equal(t, user.ID.String(), shared.GetSession(c).GetUserID())
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should pass through with NoSession when the token is invalid", func(t *testing.T) {
		mw := SessionMiddleware(stubAuthService{err: errors.New("invalid access token")}, stubRBACProvider{})

		ctx := newTestContext("Bearer broken")
		var called bool
		err := mw(func(c echo.Context) error {
			called = true
			assert.Empty(t, shared.GetSession(c).GetUserID())
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should pass through with NoSession when no header is present", func(t *testing.T) {
		mw := SessionMiddleware(stubAuthService{}, stubRBACProvider{})

		ctx := newTestContext("")
		err := mw(func(c echo.Context) error {
			assert.Empty(t, shared.GetSession(c).GetUserID())
			return nil
		})(ctx)

		assert.NoError(t, err)
	})
}

func TestRequireSession(t *testing.T) {
	t.Run("should reject an anonymous request", func(t *testing.T) {
		mw := SessionMiddleware(stubAuthService{}, stubRBACProvider{})
		ctx := newTestContext("")

		err := mw(RequireSession(func(c echo.Context) error { return nil }))(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
	})
}
