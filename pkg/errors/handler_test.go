package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler_Handle_StatusPerKind(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   ErrorType
	}{
		{NewInvalidRequestError("id and title are required"), http.StatusBadRequest, ErrorTypeInvalidRequest},
		{NewSchemaViolationError("schema", "violations"), http.StatusInternalServerError, ErrorTypeSchemaViolation},
		{NewUnauthorizedError(""), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{NewForbiddenError("not the owner"), http.StatusForbidden, ErrorTypeForbidden},
		{NewConflictError("exists"), http.StatusConflict, ErrorTypeConflict},
		{NewTranslationFailureError("failed", errors.New("x")), http.StatusBadGateway, ErrorTypeTranslationFailure},
		{NewStoreFailureError("get", errors.New("x")), http.StatusServiceUnavailable, ErrorTypeStoreFailure},
		{NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	h := NewErrorHandler(zap.NewNop(), false)
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/games/1", nil)

			// Errors reach the handler wrapped by the buses
			h.Handle(rec, req, fmt.Errorf("query handler failed: %w", tt.err))

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, string(tt.kind), body.Type)
		})
	}
}

func TestErrorHandler_Handle_SchemaDetails(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/games/1?foo=bar", nil)

	h.Handle(rec, req, NewSchemaViolationError(map[string]string{"type": "object"}, []string{"foo is not an allowed parameter"}))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Details, "schema")
	assert.Contains(t, body.Details, "violations")
	assert.NotContains(t, body.Details, "stack_trace")
}

func TestErrorHandler_Handle_UnknownError(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/games/1", nil)

	h.Handle(rec, req, errors.New("secret internals"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func TestErrorHandler_Middleware_RecoversPanics(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
