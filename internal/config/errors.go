package config

import "github.com/ayoisaiah/marathon/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "countdown duration must be between %v and %v, got %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --duration value %q: %v",
	}

	errInvalidWarning = &apperr.Error{
		Message: "warning_at (%v) must be greater than zero and less than the countdown duration (%v)",
	}

	errInvalidAutosaveInterval = &apperr.Error{
		Message: "autosave_interval must be at least %v, got %v",
	}

	errInvalidAutosaveEvery = &apperr.Error{
		Message: "autosave_every must be at least 1, got %d",
	}

	errInvalidDismissAfter = &apperr.Error{
		Message: "dismiss_after must be greater than zero, got %v",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s (must be one of bolt, sqlite, memory)",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be one of debug, info, warn, error)",
	}
)
