package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/email-dispatcher/internal/history"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Send(ctx context.Context, fromName, to, subject, htmlBody string) (string, error) {
	args := m.Called(ctx, fromName, to, subject, htmlBody)
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestDispatchService_Send_Success(t *testing.T) {
	provider := new(ProviderMock)
	store := history.NewMemoryStore()
	service := NewDispatchService(provider, store, discardLogger())

	// Подстановка выполняется до обращения к провайдеру.
	provider.On("Send", mock.Anything, "Alice", "bob@example.com",
		"Hello, Bob!", "<p>Welcome, Bob</p>").Return("provider-id-1", nil).Once()

	record, err := service.Send(context.Background(), models.SendEmailRequest{
		From:      "alice@example.com",
		FromName:  "Alice",
		To:        "bob@example.com",
		Subject:   "Hello, {{name}}!",
		Body:      "<p>Welcome, {{name}}</p>",
		Variables: map[string]string{"name": "Bob"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.EmailStatusSent, record.Status)
	assert.Equal(t, "resend", record.APIProvider)
	assert.Equal(t, "Hello, Bob!", record.Subject)
	assert.Empty(t, record.ErrorMessage)
	assert.NotEmpty(t, record.ID)
	assert.WithinDuration(t, time.Now().UTC(), record.SentAt, 5*time.Second)

	// Статус записи совпадает с тем, что видно в журнале.
	emails, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, record.ID, emails[0].ID)
	assert.Equal(t, models.EmailStatusSent, emails[0].Status)

	provider.AssertExpectations(t)
}

func TestDispatchService_Send_ProviderFailure(t *testing.T) {
	provider := new(ProviderMock)
	store := history.NewMemoryStore()
	service := NewDispatchService(provider, store, discardLogger())

	provider.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("invalid recipient")).Once()

	record, err := service.Send(context.Background(), models.SendEmailRequest{
		From:     "alice@example.com",
		FromName: "Alice",
		To:       "not-an-address",
		Subject:  "Hello",
		Body:     "body",
	})

	// Отказ провайдера не является ошибкой вызова.
	require.NoError(t, err)
	assert.Equal(t, models.EmailStatusFailed, record.Status)
	assert.Equal(t, "invalid recipient", record.ErrorMessage)

	emails, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, models.EmailStatusFailed, emails[0].Status)
	assert.Equal(t, "invalid recipient", emails[0].ErrorMessage)

	provider.AssertExpectations(t)
}

func TestDispatchService_Send_NoVariables(t *testing.T) {
	provider := new(ProviderMock)
	store := history.NewMemoryStore()
	service := NewDispatchService(provider, store, discardLogger())

	// Без значений маркеры уходят в письмо как есть.
	provider.On("Send", mock.Anything, "Alice", "bob@example.com",
		"Hello, {{name}}!", "<p>{{body}}</p>").Return("provider-id-1", nil).Once()

	record, err := service.Send(context.Background(), models.SendEmailRequest{
		From:     "alice@example.com",
		FromName: "Alice",
		To:       "bob@example.com",
		Subject:  "Hello, {{name}}!",
		Body:     "<p>{{body}}</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello, {{name}}!", record.Subject)

	provider.AssertExpectations(t)
}

func TestDispatchService_History_FiltersByFrom(t *testing.T) {
	provider := new(ProviderMock)
	store := history.NewMemoryStore()
	service := NewDispatchService(provider, store, discardLogger())

	require.NoError(t, store.Append(context.Background(), models.Email{
		ID: "e1", From: "alice@example.com", Status: models.EmailStatusSent,
	}))
	require.NoError(t, store.Append(context.Background(), models.Email{
		ID: "e2", From: "carol@example.com", Status: models.EmailStatusSent,
	}))

	mine, err := service.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "e1", mine[0].ID)

	all, err := service.History(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
