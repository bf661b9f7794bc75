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
	"github.com/fleetdesk-io/fleetdesk/database"
	"github.com/fleetdesk-io/fleetdesk/database/models"
	"github.com/fleetdesk-io/fleetdesk/dtos"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/labstack/echo/v4"
)

type employeService struct {
	employeRepository shared.EmployeRepository
	userRepository    shared.UserRepository
}

func NewEmployeService(employeRepository shared.EmployeRepository, userRepository shared.UserRepository) *employeService {
	return &employeService{
		employeRepository: employeRepository,
		userRepository:    userRepository,
	}
}

func (s *employeService) Create(request dtos.EmployeCreateRequest) (models.Employe, error) {
	employe := models.Employe{
		Nom:    request.Nom,
		Prenom: request.Prenom,
		Email:  request.Email,
	}

	err := s.employeRepository.Transaction(func(tx shared.DB) error {
		if err := s.employeRepository.Create(tx, &employe); err != nil {
			return err
		}

		if request.Password != "" {
			user := models.User{
				Email:     request.Email,
				Role:      models.RoleEmploye,
				EmployeID: &employe.ID,
			}
			if err := user.SetPassword(request.Password); err != nil {
				return err
			}
			if err := s.userRepository.Create(tx, &user); err != nil {
				return err
			}
			employe.UserID = &user.ID
			return s.employeRepository.Save(tx, &employe)
		}
		return nil
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Employe{}, echo.NewHTTPError(409, "an employe with that email already exists").WithInternal(err)
		}
		return models.Employe{}, err
	}
	return employe, nil
}

func (s *employeService) Read(id int64) (models.Employe, error) {
	return s.employeRepository.Read(id)
}

func (s *employeService) Update(id int64, request dtos.EmployeUpdateRequest) (models.Employe, error) {
	employe, err := s.employeRepository.Read(id)
	if err != nil {
		return models.Employe{}, err
	}

	if request.Nom != nil {
		employe.Nom = *request.Nom
	}
	if request.Prenom != nil {
		employe.Prenom = *request.Prenom
	}
	if request.Email != nil {
		employe.Email = *request.Email
	}

	if err := s.employeRepository.Save(nil, &employe); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Employe{}, echo.NewHTTPError(409, "an employe with that email already exists").WithInternal(err)
		}
		return models.Employe{}, err
	}
	return employe, nil
}

func (s *employeService) Delete(id int64) error {
	return s.employeRepository.Delete(nil, id)
}

func (s *employeService) ListAll() ([]models.Employe, error) {
	return s.employeRepository.GetAll()
}
