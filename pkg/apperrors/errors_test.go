package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", Forbidden("nope"), http.StatusForbidden},
		{"wrapped app error", fmt.Errorf("resolve: %w", NotFound("missing")), http.StatusNotFound},
		{"sentinel not found", fmt.Errorf("brand x: %w", ErrNotFound), http.StatusNotFound},
		{"empty gallery", ErrEmptyGallery, http.StatusNotFound},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppError_WithDoesNotMutate(t *testing.T) {
	base := NotFound("Dossier non trouvé")
	withPath := base.With("path", "/img/x")

	assert.Nil(t, base.Details)
	assert.Equal(t, "/img/x", withPath.Details["path"])
	assert.True(t, errors.Is(withPath, ErrNotFound))
	assert.Contains(t, withPath.Error(), "Dossier non trouvé")
}

func TestWithStack(t *testing.T) {
	assert.Nil(t, WithStack(nil))
	assert.Empty(t, Stack(errors.New("bare")))

	cause := fmt.Errorf("read folder: %w", ErrNotFound)
	err := WithStack(cause)
	assert.Equal(t, cause.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, Stack(err), "TestWithStack")

	wrapped := fmt.Errorf("gallery: %w", err)
	assert.Equal(t, Stack(err), Stack(wrapped))
	assert.Same(t, wrapped, WithStack(wrapped))
}

func TestWithStack_RecordsCreationSite(t *testing.T) {
	err := failingLookup()
	assert.Contains(t, Stack(err), "failingLookup")
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func failingLookup() error {
	return WithStack(errors.New("disk on fire"))
}
