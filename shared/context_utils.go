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
	"fmt"
	"strconv"

	"github.com/fleetdesk-io/fleetdesk/database/models"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetUser(ctx Context) models.User {
	return ctx.Get("user").(models.User)
}

func SetUser(ctx Context, user models.User) {
	ctx.Set("user", user)
}

// GetChauffeur returns the driver profile the session middleware resolved
// for the authenticated user. Only set on routes behind the chauffeur
// context middleware.
func GetChauffeur(ctx Context) models.Chauffeur {
	return ctx.Get("chauffeur").(models.Chauffeur)
}

func SetChauffeur(ctx Context, chauffeur models.Chauffeur) {
	ctx.Set("chauffeur", chauffeur)
}

func GetEmploye(ctx Context) models.Employe {
	return ctx.Get("employe").(models.Employe)
}

func SetEmploye(ctx Context, employe models.Employe) {
	ctx.Set("employe", employe)
}

func GetMission(ctx Context) models.Mission {
	return ctx.Get("mission").(models.Mission)
}

func SetMission(ctx Context, mission models.Mission) {
	ctx.Set("mission", mission)
}

// ParamID parses a numeric path parameter. Returns an error for anything
// that is not a positive integer.
func ParamID(ctx Context, name string) (int64, error) {
	raw := SanitizeParam(ctx.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return id, nil
}

// QueryID parses a numeric query parameter the same way ParamID does.
func QueryID(ctx Context, name string) (int64, error) {
	raw := SanitizeParam(ctx.QueryParam(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}
