package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrap(t *testing.T) {
	errBase := &Error{Message: "reading state failed"}

	err := errBase.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading state failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errBase)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestErrorFmt(t *testing.T) {
	errTemplate := &Error{Message: "unknown backend: %s"}

	err := errTemplate.Fmt("redis")

	assert.Equal(t, "unknown backend: redis", err.Error())
	assert.False(t, errors.Is(err, errTemplate))
}
