package store

import "github.com/ayoisaiah/marathon/internal/apperr"

var (
	errMarathonRunning = &apperr.Error{
		Message: "is marathon already running? Only one instance can be active at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s",
	}

	errOpenDB = &apperr.Error{
		Message: "opening database failed",
	}

	errMigrate = &apperr.Error{
		Message: "migrating database failed",
	}
)

// ErrMarathonRunning is returned when the database is locked by another
// instance.
var ErrMarathonRunning error = errMarathonRunning
