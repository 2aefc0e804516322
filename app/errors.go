package app

import "github.com/ayoisaiah/marathon/internal/apperr"

var (
	errStateUnavailable = &apperr.Error{
		Message: "marathon is open in another terminal and has not reported its status yet",
	}

	errResetWhileRunning = &apperr.Error{
		Message: "close marathon in the other terminal before resetting the countdown",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value %q",
	}

	errFormatConflict = &apperr.Error{
		Message: "--json and --yaml cannot be used together",
	}
)
