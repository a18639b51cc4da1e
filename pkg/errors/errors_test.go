package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[*AppError]int{
		Validation("raw_text required"):                 http.StatusBadRequest,
		UnsupportedMedia("not audio"):                   http.StatusUnsupportedMediaType,
		GenerationFailed(fmt.Errorf("upstream 500")):    http.StatusBadGateway,
		TranscriptionFailed(fmt.Errorf("upstream 500")): http.StatusBadGateway,
		NotFound("encounter"):                           http.StatusNotFound,
		Internal(fmt.Errorf("boom")):                    http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, err.HTTPStatus(), "code %s", err.Code)
	}
}

func TestUnwrapAndAs(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := GenerationFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	wrapped := fmt.Errorf("handling request: %w", err)
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeGenerationFailed, appErr.Code)

	_, ok = AsAppError(cause)
	assert.False(t, ok)
}
