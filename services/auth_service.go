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
	"crypto/rand"
	"encoding/hex"

	"github.com/fleetdesk-io/fleetdesk/database"
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type authService struct {
	userRepository        shared.UserRepository
	accessTokenRepository shared.AccessTokenRepository
}

func NewAuthService(userRepository shared.UserRepository, accessTokenRepository shared.AccessTokenRepository) *authService {
	return &authService{
		userRepository:        userRepository,
		accessTokenRepository: accessTokenRepository,
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "could not generate token")
	}
	return hex.EncodeToString(b), nil
}

func (s *authService) Login(request dtos.LoginRequest) (dtos.LoginResponse, error) {
	user, err := s.userRepository.ReadByEmail(request.Email)
	if err != nil {
		// same answer as a wrong password - do not leak which emails exist
		return dtos.LoginResponse{}, echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}
	if err := user.ComparePassword(request.Password); err != nil {
		return dtos.LoginResponse{}, echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	plain, err := generateToken()
	if err != nil {
		return dtos.LoginResponse{}, err
	}

	accessToken := models.AccessToken{
		UserID: user.ID,
		Token:  models.AccessToken{}.HashToken(plain),
	}
	if err := s.accessTokenRepository.Create(nil, &accessToken); err != nil {
		return dtos.LoginResponse{}, err
	}

	return dtos.LoginResponse{
		Token: plain,
		User:  dtos.UserToDTO(user),
	}, nil
}

func (s *authService) Logout(token string) error {
	accessToken, err := s.accessTokenRepository.ReadByToken(token)
	if err != nil {
		// already gone - logout is idempotent
		return nil
	}
	return s.accessTokenRepository.Delete(nil, accessToken.ID)
}

func (s *authService) VerifyToken(token string) (models.User, error) {
	accessToken, err := s.accessTokenRepository.ReadByToken(token)
	if err != nil {
		return models.User{}, errors.Wrap(err, "invalid access token")
	}

	user, err := s.userRepository.Read(accessToken.UserID)
	if err != nil {
		return models.User{}, errors.Wrap(err, "token references an unknown user")
	}

	// best effort - an audit timestamp must not fail the request
	_ = s.accessTokenRepository.MarkAsLastUsedNow(accessToken.ID)

	return user, nil
}

func (s *authService) CreateUser(request dtos.UserCreateRequest) (models.User, error) {
	user := models.User{
		Email:       request.Email,
		Role:        models.UserRole(request.Role),
		ChauffeurID: request.ChauffeurID,
		EmployeID:   request.EmployeID,
	}
	if err := user.SetPassword(request.Password); err != nil {
		return models.User{}, err
	}

	if err := s.userRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.User{}, echo.NewHTTPError(409, "a user with that email already exists").WithInternal(err)
		}
		return models.User{}, err
	}
	return user, nil
}
