package jwtauth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtauth "github.com/arminmzh/storeforge-backend/internal/auth/jwt"
	mockjwt "github.com/arminmzh/storeforge-backend/internal/auth/jwt/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenParser := mockjwt.NewMockTokenParser(ctrl)
	logger := zap.NewNop()
	middleware := jwtauth.NewMiddleware(logger, mockTokenParser)

	tests := []struct {
		name               string
		authHeader         string
		setupMock          func()
		expectedStatusCode int
		expectedStoreID    *string
	}{
		{
			name:               "No auth header",
			authHeader:         "",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedStoreID:    nil,
		},
		{
			name:               "Missing Bearer prefix",
			authHeader:         "some.raw.token",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
			expectedStoreID:    nil,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer invalid.token.here",
			setupMock: func() {
				mockTokenParser.EXPECT().
					ParseToken("invalid.token.here").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedStoreID:    nil,
		},
		{
			name:       "Valid token without tenant claim",
			authHeader: "Bearer orphan.token",
			setupMock: func() {
				mockTokenParser.EXPECT().
					ParseToken("orphan.token").
					Return(&jwtauth.Claims{UserID: "u1"}, nil)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedStoreID:    nil,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid.token",
			setupMock: func() {
				mockTokenParser.EXPECT().
					ParseToken("valid.token").
					Return(&jwtauth.Claims{UserID: "u1", StoreID: "store-42"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedStoreID:    ptr("store-42"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/some-protected-route", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			var actualStoreID *string

			protectedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if v := r.Context().Value(jwtauth.ClaimsContextKey{}); v != nil {
					claims := v.(*jwtauth.Claims)
					actualStoreID = &claims.StoreID
				}
				w.WriteHeader(http.StatusOK)
			})

			handlerToTest := middleware(protectedHandler)
			handlerToTest.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedStoreID, actualStoreID)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
