package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/services"
)

func TestCreateLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityQuerier(ctrl)

	tests := []struct {
		name           string
		inputBody      interface{}
		mockSetup      func()
		expectedCode   int
		expectedDetail string
	}{
		{
			name:      "success",
			inputBody: CreateLogRequest{Action: "page_view", LogType: models.LogTypeUser},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return("log-1", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:           "missing action",
			inputBody:      CreateLogRequest{Details: "no action"},
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Action is required",
		},
		{
			name:           "invalid JSON",
			inputBody:      "{invalid json}",
			mockSetup:      func() {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid request body",
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

			req := httptest.NewRequest(http.MethodPost, "/api/logs", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewCreateLogHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedDetail != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedDetail, resp.Detail)
			} else {
				var resp CreateLogResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "log-1", resp.ID)
			}
		})
	}
}

func TestQueryLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityQuerier(ctrl)
	mockSvc.EXPECT().
		Query(gomock.Any(), services.LogFilter{LogType: models.LogTypeUser, Username: "alice"}, 5, 10).
		Return([]models.ActivityLog{{ID: "log-1", Action: "login"}}, 42, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/logs?log_type=user&username=alice&skip=5&limit=10", nil)
	w := httptest.NewRecorder()

	NewQueryLogsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LogsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.Total)
	assert.Equal(t, 5, resp.Skip)
	assert.Equal(t, 10, resp.Limit)
	assert.Len(t, resp.Logs, 1)
}

func TestQueryLogsHandler_DefaultPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityQuerier(ctrl)
	mockSvc.EXPECT().
		Query(gomock.Any(), services.LogFilter{}, 0, defaultLogPageSize).
		Return([]models.ActivityLog{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/logs?skip=bogus", nil)
	w := httptest.NewRecorder()

	NewQueryLogsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityQuerier(ctrl)
	mockSvc.EXPECT().
		Stats(gomock.Any()).
		Return(services.ActivityStats{
			Total:   3,
			ByType:  map[string]int{models.LogTypeUser: 3},
			ByLevel: map[string]int{models.LogLevelInfo: 2, models.LogLevelError: 1},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/logs/stats", nil)
	w := httptest.NewRecorder()

	NewLogStatsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp services.ActivityStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.ByType[models.LogTypeUser])
}

func TestClearLogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityQuerier(ctrl)
	mockSvc.EXPECT().
		Clear(gomock.Any()).
		Return(7, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/logs", nil)
	w := httptest.NewRecorder()

	NewClearLogsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ClearLogsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Deleted)
}
