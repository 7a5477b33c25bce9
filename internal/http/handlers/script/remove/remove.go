// Package remove реализует HTTP-обработчик удаления почтового шаблона.
package remove

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
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// Service описывает интерфейс бизнес-логики удаления шаблона.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// Handler управляет HTTP-запросами на удаление шаблонов.
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
// @Summary Удалить шаблон
// @Description Удаляет шаблон по идентификатору.
// @Tags Scripts
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор шаблона"
// @Success 200 {object} map[string]any "Шаблон удалён"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Шаблон не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scripts/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.script.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("script not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("script not found"))
			return
		}
		log.Error("failed to delete script", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete script"))
		return
	}

	log.Info("script deleted", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
