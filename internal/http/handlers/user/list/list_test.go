package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		mockUsers      []*models.User
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name: "success",
			mockUsers: []*models.User{
				{UID: "uid-1", Email: "a@example.com", Role: "admin", Active: true},
				{UID: "uid-2", Email: "b@example.com", Role: "user", Active: true},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service error",
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to list users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(UserServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			serviceMock.On("List", mock.Anything).Return(tt.mockUsers, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, true, got["success"])
				users, ok := got["users"].([]any)
				assert.True(t, ok)
				assert.Len(t, users, 2)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
