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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	tests := []struct {
		name           string
		inputBody      interface{}
		mockSetup      func()
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Username: "john",
				Password: "pass123",
				Email:    "john@example.com",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "pass123", "", gomock.Any()).
					Return(models.User{ID: "u1", Username: "john", Role: models.RoleUser}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			inputBody:      "{invalid json}",
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid request body",
		},
		{
			name: "missing fields",
			inputBody: RegisterRequest{
				Username: "john",
			},
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Username and password are required",
		},
		{
			name: "duplicate username",
			inputBody: RegisterRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "", "pass123", "", gomock.Any()).
					Return(models.User{}, services.ErrUsernameTaken)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Username already registered",
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username: "john",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "", "pass123", "", gomock.Any()).
					Return(models.User{}, errors.New("store down"))
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

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedDetail != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedDetail, resp.Detail)
			} else {
				var user models.User
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
				assert.Equal(t, "john", user.Username)
			}
		})
	}
}
