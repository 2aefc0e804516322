package timer

import "github.com/ayoisaiah/marathon/internal/apperr"

var (
	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the speaker",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errStatusFile = &apperr.Error{
		Message: "unable to write the status file",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
