package update

import (
	"bytes"
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

func (m *ScriptServiceMock) Update(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error) {
	args := m.Called(ctx, id, patch)
	script, _ := args.Get(0).(*models.Script)
	return script, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func strPtr(s string) *string { return &s }

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		mockScript     *models.Script
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "update subject only",
			id:          "script-1",
			requestBody: Request{Subject: strPtr("New subject")},
			mockScript: &models.Script{
				ID: "script-1", Name: "Welcome", Subject: "New subject", Body: "old body",
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			id:             "script-1",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "not found",
			id:             "missing",
			requestBody:    Request{Name: strPtr("New name")},
			mockErr:        storage.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "script not found",
		},
		{
			name:           "service error",
			id:             "script-1",
			requestBody:    Request{Name: strPtr("New name")},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to update script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ScriptServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockScript != nil || tt.mockErr != nil {
				serviceMock.On("Update", mock.Anything, tt.id, mock.Anything).
					Return(tt.mockScript, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/scripts/"+tt.id, bytes.NewReader(bodyBytes))
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
				assert.Equal(t, "New subject", script["subject"])
				assert.Equal(t, "old body", script["body"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
