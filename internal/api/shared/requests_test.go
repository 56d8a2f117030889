package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Keyword string `json:"keyword" validate:"required"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"keyword":"a"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &p))
	assert.Equal(t, "a", p.Keyword)
	assert.NoError(t, ValidateRequest(p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &p), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"keyword":"a"} {"keyword":"b"}`))
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &p))

	assert.Error(t, ValidateRequest(payload{}))
}
