package main

import (
	"errors"
	"fmt"
	"testing"

	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: enter a title or choose an image", apperrors.ErrInvalidInput), "Invalid input: invalid input: enter a title or choose an image"},
		{fmt.Errorf("%w: \"tomorrow-ish\"", apperrors.ErrInvalidDate), "Invalid input"},
		{fmt.Errorf("%w: Event not found", apperrors.ErrEventNotFound), "no longer exists"},
		{fmt.Errorf("%w: Could not read event from image", apperrors.ErrExtractionFailed), "Could not read an event"},
		{fmt.Errorf("%w: dial tcp: connection refused", apperrors.ErrServerUnavailable), "unavailable right now"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Contains(t, userMessage(tt.err), tt.want)
	}
}

func TestSelectedDay(t *testing.T) {
	d, err := selectedDay("March 15, 2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	_, err = selectedDay("someday")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	d, err = selectedDay("")
	require.NoError(t, err)
	assert.False(t, d.IsZero())
}
