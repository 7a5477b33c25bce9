package read

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

type ScriptServiceMock struct {
	mock.Mock
}

func (m *ScriptServiceMock) Get(ctx context.Context, id string) (*models.Script, error) {
	args := m.Called(ctx, id)
	script, _ := args.Get(0).(*models.Script)
	return script, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockScript     *models.Script
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name: "success",
			id:   "script-1",
			mockScript: &models.Script{
				ID: "script-1", Name: "Welcome",
				Subject: "Hello, {{name}}!", Body: "<p>Welcome, {{name}}</p>",
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "not found",
			id:             "missing",
			mockErr:        storage.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "script not found",
		},
		{
			name:           "service error",
			id:             "script-1",
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to get script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ScriptServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			serviceMock.On("Get", mock.Anything, tt.id).Return(tt.mockScript, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/scripts/"+tt.id, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, true, got["success"])
				script, ok := got["script"].(map[string]any)
				assert.True(t, ok)
				// Шаблон возвращается с маркерами, без подстановки.
				assert.Equal(t, "Hello, {{name}}!", script["subject"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
