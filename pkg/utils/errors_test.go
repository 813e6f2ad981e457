package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	err := fmt.Errorf("get movie: %w", NotFoundError("Movie not found"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUpstream)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := UpstreamError("Failed to fetch movies", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to fetch movies: dial tcp: connection refused", err.Error())
}

func TestErrorCode_HTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		CodeValidation: http.StatusBadRequest,
		CodeConflict:   http.StatusBadRequest,
		CodeNotFound:   http.StatusNotFound,
		CodeUpstream:   http.StatusInternalServerError,
		CodeInternal:   http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, code.HTTPStatus(), string(code))
	}
}
