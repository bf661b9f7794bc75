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

package daemons

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fleetdesk-io/fleetdesk/monitoring"
	"github.com/fleetdesk-io/fleetdesk/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func getLastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}

	return lastRun.Time, nil
}

func shouldRun(configService shared.ConfigService, key string, interval time.Duration) bool {
	lastTime, err := getLastRunTime(configService, key)
	if err != nil {
		return false
	}

	return time.Since(lastTime) > interval
}

func markRan(configService shared.ConfigService, key string) error {
	return configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: time.Now(),
	})
}

func retentionDays() int {
	if raw := os.Getenv("NOTIFICATION_RETENTION_DAYS"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			return days
		}
	}
	return 90
}

func (runner *DaemonRunner) runDaemons() {
	daemonStart := time.Now()
	slog.Info("starting background jobs", "time", time.Now())

	// read notifications older than the retention window only pile up
	if shouldRun(runner.configService, "retention.notifications", 12*time.Hour) {
		start := time.Now()
		if err := runner.purgeReadNotifications(); err != nil {
			slog.Error("could not purge read notifications", "err", err)
			return
		}
		if err := markRan(runner.configService, "retention.notifications"); err != nil {
			slog.Error("could not mark retention.notifications as ran", "err", err)
		}
		monitoring.NotificationRetentionDuration.Observe(time.Since(start).Seconds())
	}

	// pending leave requests whose window has already closed get refused,
	// otherwise they sit in the admin queue forever
	if shouldRun(runner.configService, "conges.expiry", 6*time.Hour) {
		start := time.Now()
		if err := runner.expireStaleLeaveRequests(); err != nil {
			slog.Error("could not expire stale leave requests", "err", err)
			return
		}
		if err := markRan(runner.configService, "conges.expiry"); err != nil {
			slog.Error("could not mark conges.expiry as ran", "err", err)
		}
		monitoring.LeaveExpiryDuration.Observe(time.Since(start).Seconds())
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
}

func (runner *DaemonRunner) purgeReadNotifications() error {
	days := retentionDays()
	deleted, err := runner.notificationRepository.DeleteReadOlderThan(nil, days)
	if err != nil {
		return err
	}
	slog.Info("purged read notifications", "deleted", deleted, "retentionDays", days)
	return nil
}

func (runner *DaemonRunner) expireStaleLeaveRequests() error {
	pending, err := runner.indisponibiliteRepository.GetPending()
	if err != nil {
		return err
	}

	now := time.Now()
	expired := 0
	for _, leave := range pending {
		if leave.DateFin.After(now) {
			continue
		}
		if _, err := runner.leaveService.Refuse(leave.ID, "Demande expirée: la période demandée est déjà passée"); err != nil {
			slog.Error("could not expire leave request", "err", err, "id", leave.ID)
			continue
		}
		expired++
	}

	if expired > 0 {
		slog.Info("expired stale leave requests", "count", expired)
	}
	return nil
}
