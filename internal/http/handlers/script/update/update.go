// Package update реализует HTTP-обработчик частичного обновления почтового шаблона.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// Request — входные данные для частичного обновления шаблона.
// nil означает "поле не меняется".
type Request struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Subject *string `json:"subject" validate:"omitempty,min=1"`
	Body    *string `json:"body" validate:"omitempty,min=1"`
}

// Service описывает интерфейс бизнес-логики обновления шаблона.
type Service interface {
	Update(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error)
}

// Handler управляет HTTP-запросами на обновление шаблонов.
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
// @Summary Обновить шаблон
// @Description Применяет частичное обновление шаблона.
// @Tags Scripts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор шаблона"
// @Param request body Request true "Изменяемые поля"
// @Success 200 {object} map[string]any "Обновлённый шаблон"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Шаблон не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scripts/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.script.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	patch := models.ScriptPatch{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	}

	script, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Error("script not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("script not found"))
			return
		}
		log.Error("failed to update script", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update script"))
		return
	}

	log.Info("script updated", slog.String("id", script.ID))
	render.JSON(w, r, response.OKWith("script", script))
}
