// Package read реализует HTTP-обработчик получения одного почтового шаблона.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// Service описывает интерфейс бизнес-логики получения шаблона.
type Service interface {
	Get(ctx context.Context, id string) (*models.Script, error)
}

// Handler управляет HTTP-запросами на получение шаблона.
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
// @Summary Получить шаблон
// @Description Возвращает шаблон по идентификатору.
// @Tags Scripts
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор шаблона"
// @Success 200 {object} map[string]any "Шаблон"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Шаблон не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scripts/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.script.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	script, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("script not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("script not found"))
			return
		}
		log.Error("failed to get script", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get script"))
		return
	}

	log.Info("success to get script", slog.String("id", script.ID))
	render.JSON(w, r, response.OKWith("script", script))
}
