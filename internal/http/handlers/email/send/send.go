// Package send реализует HTTP-обработчик отправки письма.
//
// Handler принимает JSON-запрос с адресами, темой, телом и значениями
// для подстановки, вызывает сервис отправки и возвращает запись журнала.
// Отказ провайдера не меняет HTTP-статус: он виден по success=false
// и статусу failed в самой записи.
package send

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// Service описывает интерфейс бизнес-логики отправки письма.
type Service interface {
	Send(ctx context.Context, req models.SendEmailRequest) (*models.Email, error)
}

// Handler управляет HTTP-запросами на отправку писем.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправить письмо
// @Description Подставляет значения в тему и тело, отправляет письмо и возвращает запись журнала.
// @Tags Emails
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.SendEmailRequest true "Данные письма"
// @Success 200 {object} map[string]any "Запись журнала отправки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /emails/send [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.email.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("to", req.To))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	record, err := h.service.Send(r.Context(), req)
	if err != nil {
		log.Error("failed to dispatch email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to send email"))
		return
	}

	log.Info("email dispatched",
		slog.String("id", record.ID),
		slog.String("status", record.Status))
	render.JSON(w, r, map[string]any{
		"success": record.Status == models.EmailStatusSent,
		"email":   record,
	})
}
