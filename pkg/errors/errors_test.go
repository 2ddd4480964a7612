package errors_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/scholarly/authormatch/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("authors", nil, "document has no author names")
		assert.Equal(t, "validation failed for field authors: document has no author names", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty document"}
		assert.Equal(t, "validation failed: empty document", err.Error())
	})
}

func TestIDError(t *testing.T) {
	err := pkgerrors.NewIDError("orcid", "0000-0002-1825-0098", "checksum mismatch")
	assert.Equal(t, `invalid orcid iD "0000-0002-1825-0098": checksum mismatch`, err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrInvalidID))
	assert.True(t, pkgerrors.IsInvalidID(err))
	assert.False(t, pkgerrors.IsValidationError(err))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected node")
	err := pkgerrors.NewParseError("yaml", "authors.yaml", "unexpected node", cause)
	assert.Equal(t, "parse error in yaml file authors.yaml: unexpected node", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := &pkgerrors.ParseError{Format: "json", Message: "truncated"}
	assert.Equal(t, "json parse error: truncated", bare.Error())
}

func TestIOError(t *testing.T) {
	err := pkgerrors.NewIOError("read", "authors.yaml", fs.ErrNotExist)
	assert.Contains(t, err.Error(), "IO error during read of authors.yaml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("logging", "unknown level", nil)
	assert.Equal(t, "configuration error in logging: unknown level", err.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("yaml", "x", nil))

	cause := errors.New("boom")
	wrapped := pkgerrors.WrapIO("write", "out.yaml", cause)
	assert.True(t, errors.Is(wrapped, cause))

	parsed := pkgerrors.WrapParse("yaml", "in.yaml", cause)
	assert.True(t, errors.Is(parsed, cause))
}
