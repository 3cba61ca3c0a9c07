package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindForbidden, "access denied, forbidden")
	assert.Equal(t, KindForbidden, KindOf(err))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, KindForbidden, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(New(KindValidation, "title is required")))
	assert.Equal(t, http.StatusBadRequest, Status(New(KindConflict, "user already exist")))
	assert.Equal(t, http.StatusUnauthorized, Status(New(KindUnauthenticated, "invalid token")))
	assert.Equal(t, http.StatusForbidden, Status(New(KindForbidden, "access denied, forbidden")))
	assert.Equal(t, http.StatusNotFound, Status(New(KindNotFound, "post not found")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "failed to fetch posts", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to fetch posts", err.Error())
}
