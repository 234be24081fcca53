package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFailure_KeepsMessage(t *testing.T) {
	f := NewFailure("boom")
	require.Equal(t, "boom", f.Message)
	require.Equal(t, "boom", f.Error())
}

func TestNewFailure_EmptyMessageFallsBack(t *testing.T) {
	f := NewFailure("")
	require.Equal(t, DefaultFailureMessage, f.Message)
}

func TestFailureFrom(t *testing.T) {
	require.Nil(t, FailureFrom(nil))

	f := FailureFrom(errors.New("db error: connection refused"))
	require.Equal(t, "db error: connection refused", f.Message)
}
