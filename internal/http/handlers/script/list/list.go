// Package list реализует HTTP-обработчик получения списка почтовых шаблонов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// Service описывает интерфейс бизнес-логики получения шаблонов.
type Service interface {
	List(ctx context.Context) ([]*models.Script, error)
}

// Handler управляет HTTP-запросами на получение списка шаблонов.
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
// @Summary Список шаблонов
// @Description Возвращает все сохранённые почтовые шаблоны.
// @Tags Scripts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список шаблонов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scripts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.script.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	scripts, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list scripts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list scripts"))
		return
	}

	log.Info("success to list scripts", slog.Int("count", len(scripts)))
	render.JSON(w, r, response.OKWith("scripts", scripts))
}
