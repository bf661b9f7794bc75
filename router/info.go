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

package router

// typed payloads for the /info/ diagnostics endpoint

type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	UptimeSeconds int    `json:"uptimeSeconds"`
	Hostname      string `json:"hostname,omitempty"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion"`
	NumGoroutines int      `json:"numGoroutines"`
	Mem           MemStats `json:"mem"`
}

type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

type PoolInfo struct {
	DBName          string `json:"dbName"`
	MaxOpenConns    int    `json:"maxOpenConns"`
	ConnMaxLifetime string `json:"connMaxLifetime"`
	ConnMaxIdleTime string `json:"connMaxIdleTime"`
	TotalConns      int    `json:"totalConns"`
	IdleConns       int    `json:"idleConns"`
	AcquiredConns   int    `json:"acquiredConns"`
	MaxConns        int    `json:"maxConns"`
}

type DatabaseInfo struct {
	Status             string    `json:"status"`
	Error              *string   `json:"error,omitempty"`
	OpenConnections    int       `json:"openConnections"`
	InUse              int       `json:"inUse"`
	Idle               int       `json:"idle"`
	MaxOpenConnections int       `json:"maxOpenConnections"`
	Pool               *PoolInfo `json:"pool,omitempty"`
}
