// Package history реализует HTTP-обработчик просмотра журнала отправок.
//
// Обычный пользователь видит только письма со своим адресом отправителя.
// Администратор может запросить журнал любого адреса или весь журнал целиком.
package history

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// Service описывает интерфейс бизнес-логики журнала отправок.
type Service interface {
	History(ctx context.Context, fromEmail string) ([]models.Email, error)
}

// Handler управляет HTTP-запросами на просмотр журнала отправок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Журнал отправок
// @Description Возвращает журнал отправленных писем. Не-администраторы видят только свои письма.
// @Tags Emails
// @Produce  json
// @Security BearerAuth
// @Param userEmail query string false "Фильтр по адресу отправителя (только для администраторов)"
// @Success 200 {object} map[string]any "Журнал отправок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /emails/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.email.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	role, _ := r.Context().Value(middlewarectx.Role).(string)

	// Не-администратор всегда получает только свой журнал,
	// параметр userEmail учитывается только для роли admin.
	fromEmail := email
	if role == "admin" {
		fromEmail = r.URL.Query().Get("userEmail")
	}

	emails, err := h.service.History(r.Context(), fromEmail)
	if err != nil {
		log.Error("failed to get email history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get email history"))
		return
	}

	log.Info("success to get email history", slog.Int("count", len(emails)))
	render.JSON(w, r, response.OKWith("emails", emails))
}
