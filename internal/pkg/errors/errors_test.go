package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/place-search-service/internal/pkg/errors"
)

func TestAppError_Wrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.ErrUpstream.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errors.ErrUpstream)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)

	// the sentinel keeps no cause
	assert.Nil(t, errors.ErrUpstream.Unwrap())
}

func TestAppError_CopiesDoNotMutateSentinel(t *testing.T) {
	original := errors.ErrValidation.Message

	withMsg := errors.ErrValidation.WithMessage("lat is required")
	withDetails := errors.ErrValidation.WithDetails(map[string]interface{}{"field": "lat"})

	assert.Equal(t, "lat is required", withMsg.Message)
	assert.Equal(t, "lat", withDetails.Details["field"])
	assert.Equal(t, original, errors.ErrValidation.Message)
	assert.Empty(t, errors.ErrValidation.Details)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", errors.ErrEmptyReport)

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, errors.CodeEmptyReport, appErr.Code)

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestAppError_IsComparesCodes(t *testing.T) {
	assert.ErrorIs(t, errors.ErrInvalidRequest, errors.ErrValidation)
	assert.NotErrorIs(t, errors.ErrRender, errors.ErrEmptyReport)
}
