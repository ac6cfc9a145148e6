//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, when target is non-nil,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body is not JSON: %s", w.Body.String())
	}
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var env errorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "error body is not JSON: %s", w.Body.String())
	return env
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	env := decodeError(t, w, expectedStatus)
	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg)
	}
}

// AssertErrorCode checks the machine-readable error code and returns the
// decoded detail object, if any.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) map[string]any {
	t.Helper()

	env := decodeError(t, w, expectedStatus)
	assert.Equal(t, expectedCode, env.Error.Code)
	return env.Detail
}
