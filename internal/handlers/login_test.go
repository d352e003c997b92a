package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name           string
		inputBody      interface{}
		mockSetup      func()
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123", gomock.Any()).
					Return("JWT_TOKEN", models.User{ID: "u1", Username: "john"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			inputBody:      "{invalid json}",
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid request body",
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				Username: "wronguser",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass", gomock.Any()).
					Return("", models.User{}, services.ErrInvalidCredentials)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedDetail: "Incorrect username or password",
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123", gomock.Any()).
					Return("", models.User{}, errors.New("store down"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedDetail != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedDetail, resp.Detail)
			} else {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "JWT_TOKEN", resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
				assert.Equal(t, "john", resp.User.Username)
			}
		})
	}
}
