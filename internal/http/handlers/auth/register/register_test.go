package register

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

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	args := m.Called(ctx, email, password, name)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockToken      string
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
				Name:     "User One",
			},
			mockUser: &models.User{
				UID: "uid-1", Email: "user1@example.com",
				Name: "User One", Role: "user", Active: true,
			},
			mockToken:      "token123",
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "validation error - missing password",
			requestBody: Request{
				Email: "user1@example.com",
				Name:  "User One",
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Password is a required field",
		},
		{
			name: "validation error - bad email",
			requestBody: Request{
				Email:    "not-an-email",
				Password: "password123",
				Name:     "User One",
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Email must be a valid email address",
		},
		{
			name: "duplicate email",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
				Name:     "User One",
			},
			mockErr:        storage.ErrExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already registered",
		},
		{
			name: "service error",
			requestBody: Request{
				Email:    "user1@example.com",
				Password: "password123",
				Name:     "User One",
			},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("Register", mock.Anything,
					"user1@example.com", "password123", "User One").
					Return(tt.mockUser, tt.mockToken, tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
				assert.Nil(t, got["success"])
			} else {
				assert.Equal(t, true, got["success"])
				assert.Equal(t, "token123", got["token"])
				user, ok := got["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "uid-1", user["id"])
				// Хэш пароля наружу не отдается.
				assert.NotContains(t, user, "password")
			}

			authMock.AssertExpectations(t)
		})
	}
}
