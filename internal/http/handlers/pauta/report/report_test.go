package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matheusvidal/gestor-pautas/internal/http/middlewarectx"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// MockService реализует интерфейс report.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Build(ctx context.Context, userUID string, req models.DummyFilter) (*models.Report, error) {
	args := m.Called(ctx, userUID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func TestReportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sampleReport := &models.Report{
		Total:     150,
		ByStation: map[string]float64{"Record": 100, "Band": 50},
		ByPeriod: []models.PeriodEntry{
			{Key: "2025/08 - 2ª Quinzena", Total: 100, ClosingDate: "2025-08-31", ProjectedPaymentDate: "2025-09-20"},
			{Key: "2025/08 - 1ª Quinzena", Total: 50, ClosingDate: "2025-08-15", ProjectedPaymentDate: "2025-09-04"},
		},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "успешный отчёт без фильтра",
			requestBody: models.DummyFilter{},
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything, "uid-1", models.DummyFilter{}).Return(sampleReport, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"total":150`)
				assert.Contains(t, body, `"2025/08 - 2ª Quinzena"`)
			},
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid request body"}`, body)
			},
		},
		{
			name:           "некорректная дата в фильтре",
			requestBody:    models.DummyFilter{StartDate: "20-08-2025"},
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"field StartDate can contain only date in format 2006-01-02"}`, body)
			},
		},
		{
			name:           "нет авторизации",
			requestBody:    models.DummyFilter{},
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, body)
			},
		},
		{
			name:        "ошибка сервиса",
			requestBody: models.DummyFilter{},
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything, "uid-1", models.DummyFilter{}).
					Return(nil, errors.New("database error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"could not build report"}`, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pautas/report", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middlewarectx.User, tt.userUID)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkBody(t, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
