package create

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

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) Create(ctx context.Context, email, password, name, role string) (*models.User, error) {
	args := m.Called(ctx, email, password, name, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name: "valid creation with role",
			requestBody: Request{
				Email: "admin2@example.com", Password: "password123",
				Name: "Second Admin", Role: "admin",
			},
			mockUser: &models.User{
				UID: "uid-1", Email: "admin2@example.com",
				Name: "Second Admin", Role: "admin", Active: true,
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - unsupported role",
			requestBody: Request{
				Email: "user@example.com", Password: "password123",
				Name: "User", Role: "superadmin",
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Role has an unsupported value",
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Email: "admin2@example.com", Password: "password123",
				Name: "Second Admin", Role: "admin",
			},
			mockErr:        storage.ErrExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already registered",
		},
		{
			name: "service error",
			requestBody: Request{
				Email: "admin2@example.com", Password: "password123",
				Name: "Second Admin", Role: "admin",
			},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(UserServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockUser != nil || tt.mockErr != nil {
				serviceMock.On("Create", mock.Anything,
					"admin2@example.com", "password123", "Second Admin", "admin").
					Return(tt.mockUser, tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(bodyBytes))
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
				user, ok := got["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "admin", user["role"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
