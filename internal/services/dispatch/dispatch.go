// Package services содержит логику отправки писем через внешний почтовый API
// и ведения журнала отправок.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/magabrotheeeer/email-dispatcher/internal/history"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/templater"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

var emailsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "emails_dispatched_total",
	Help: "Total number of dispatched emails by final status.",
}, []string{"status"})

// Provider описывает контракт клиента внешнего почтового API.
type Provider interface {
	// Send отправляет письмо и возвращает идентификатор у провайдера.
	Send(ctx context.Context, fromName, to, subject, htmlBody string) (string, error)
}

// DispatchService отвечает за отправку писем и журнал отправок.
type DispatchService struct {
	provider Provider
	history  history.Store
	log      *slog.Logger
}

// NewDispatchService создает новый экземпляр DispatchService.
func NewDispatchService(provider Provider, historyStore history.Store, log *slog.Logger) *DispatchService {
	return &DispatchService{
		provider: provider,
		history:  historyStore,
		log:      log,
	}
}

// Send подставляет значения в тему и тело, отправляет письмо через провайдера
// и фиксирует результат в журнале. Отказ провайдера не является ошибкой вызова:
// он отражается в статусе failed и поле errorMessage возвращаемой записи.
// Ошибка возвращается только если запись не удалось построить или сохранить.
func (s *DispatchService) Send(ctx context.Context, req models.SendEmailRequest) (*models.Email, error) {
	const op = "services.dispatch.Send"

	subject := templater.Render(req.Subject, req.Variables)
	body := templater.Render(req.Body, req.Variables)

	record := models.Email{
		ID:          uuid.NewString(),
		From:        req.From,
		FromName:    req.FromName,
		To:          req.To,
		Subject:     subject,
		Body:        body,
		SentAt:      time.Now().UTC(),
		Status:      models.EmailStatusPending,
		APIProvider: "resend",
	}

	if _, err := s.provider.Send(ctx, req.FromName, req.To, subject, body); err != nil {
		record.Status = models.EmailStatusFailed
		record.ErrorMessage = err.Error()
		s.log.Warn("provider rejected email",
			slog.String("op", op),
			slog.String("to", req.To),
			sl.Err(err))
	} else {
		record.Status = models.EmailStatusSent
	}
	emailsDispatchedTotal.WithLabelValues(record.Status).Inc()

	// Запись попадает в журнал и при успехе, и при отказе провайдера.
	if err := s.history.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &record, nil
}

// History возвращает журнал отправок. Непустой fromEmail ограничивает
// выборку письмами с этим адресом отправителя.
func (s *DispatchService) History(ctx context.Context, fromEmail string) ([]models.Email, error) {
	const op = "services.dispatch.History"
	emails, err := s.history.List(ctx, fromEmail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return emails, nil
}
