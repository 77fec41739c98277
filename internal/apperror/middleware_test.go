package apperror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		handlerErr         error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "No error",
			handlerErr:         nil,
			expectedStatusCode: http.StatusOK,
			expectedBody:       "",
		},
		{
			name:               "Not found",
			handlerErr:         ErrNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"not found"}`,
		},
		{
			name:               "Unauthorized",
			handlerErr:         ErrUnauthorized,
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"unauthorized"}`,
		},
		{
			name:               "Unauthorized with specific message",
			handlerErr:         NewUnauthorizedError("invalid password"),
			expectedStatusCode: http.StatusUnauthorized,
			expectedBody:       `{"message":"invalid password"}`,
		},
		{
			name:               "Business error",
			handlerErr:         NewAppError("discount must be between 0 and 100"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"discount must be between 0 and 100"}`,
		},
		{
			name:               "Upstream error carries the failed step",
			handlerErr:         NewUpstreamErr("deploy"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"step":"deploy","message":"external platform call failed at step \"deploy\""}`,
		},
		{
			name:               "Unexpected error stays generic",
			handlerErr:         errors.New("pq: connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			Middleware(func(w http.ResponseWriter, r *http.Request) error {
				return tt.handlerErr
			}).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}
