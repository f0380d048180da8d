package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeSuccess, GetCode(nil))
	require.Equal(t, CodeFailure, GetCode(stderrors.New("plain error")))
	require.Equal(t, CodeNoWriteDir, GetCode(New(CodeNoWriteDir, "no write directory")))
}

func TestGetCode_WrappedInStdError(t *testing.T) {
	inner := New(CodeMkdirFail, "could not make directory")
	outer := fmt.Errorf("op failed: %w", inner)

	require.Equal(t, CodeMkdirFail, GetCode(outer))
}

func TestIsCode(t *testing.T) {
	err := New(CodeRemoveFail, "could not delete")

	require.True(t, IsCode(err, CodeRemoveFail))
	require.False(t, IsCode(err, CodeWriteFail))
	require.True(t, IsCode(nil, CodeSuccess))
	require.False(t, IsCode(nil, CodeFailure))
}

func TestIsAs(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(cause, CodeFailure, "failure")

	require.True(t, Is(err, cause))

	var fsErr FsError
	require.True(t, As(err, &fsErr))
	require.Equal(t, CodeFailure, fsErr.Code())
}
