package zerrors

import (
	stderrors "errors"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap("a.go", "format", nil))
}

func TestWrapAnnotatesPathAndStage(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap("a.go", "format", cause)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.go")
	assert.Contains(t, err.Error(), "format")
	fe, ok := errors.Cause(err).(*FileError)
	require.True(t, ok)
	assert.Equal(t, cause, fe.Unwrap())
}

func TestErrorf(t *testing.T) {
	err := Errorf("bad mode %q", "xyz")
	assert.Equal(t, `bad mode "xyz"`, err.Error())
}
