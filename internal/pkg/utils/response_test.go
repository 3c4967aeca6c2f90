package utils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Custom Not Found",
			err:          exceptions.ErrAccountNotFound(nil, "a1"),
			expectedCode: constvars.StatusNotFound,
			expectedBody: `{"error":"Account not found"}`,
		},
		{
			name:         "Deadline",
			err:          context.DeadlineExceeded,
			expectedCode: constvars.StatusGatewayTimeout,
			expectedBody: `{"error":"the app taking too long to respond"}`,
		},
		{
			name:         "Plain Error",
			err:          errors.New("boom"),
			expectedCode: constvars.StatusInternalServerError,
			expectedBody: `{"error":"there is something wrong with the application"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			BuildErrorResponse(zap.NewNop(), rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
		})
	}
}

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponse(rec, constvars.StatusCreated, map[string]string{"id": "x"})

	assert.Equal(t, constvars.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"x"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	BuildMessageResponse(rec, constvars.StatusOK, constvars.DeleteAccountSuccessMessage)
	assert.JSONEq(t, `{"message":"Account deleted successfully"}`, rec.Body.String())
}
