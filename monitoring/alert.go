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

package monitoring

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert logs an unexpected error and forwards it to error tracking. The
// event id is nil when no tracking DSN is configured.
func Alert(message string, err error) {
	id := sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	slog.Error(message, "error", err, "eventID", id)
}

// RecoverAndAlert reports a recovered panic value. Meant to be called from a
// deferred recover in long-running goroutines such as the daemons.
func RecoverAndAlert(message string, recovered any) {
	id := sentry.CurrentHub().Recover(recovered)
	slog.Error(message, "recovered", recovered, "eventID", id)
}
