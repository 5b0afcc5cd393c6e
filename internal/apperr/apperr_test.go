package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{Validation, http.StatusBadRequest},
		{Conflict, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Forbidden, http.StatusForbidden},
		{Unauthorized, http.StatusUnauthorized},
		{Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusCode(New(tt.kind, "boom")))
	}
}

func TestUnclassifiedErrorIsInternal(t *testing.T) {
	err := errors.New("driver exploded")
	assert.Equal(t, Internal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Nil(t, DetailsOf(err))
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	err := fmt.Errorf("checkout: %w", New(Conflict, "Cart is empty"))
	assert.Equal(t, Conflict, KindOf(err))
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestDetails(t *testing.T) {
	err := WithDetails(Conflict, "No valid courses to enroll in", []string{"A is no longer available"})
	assert.Equal(t, []string{"A is no longer available"}, DetailsOf(err))
	assert.EqualError(t, err, "No valid courses to enroll in")
}
