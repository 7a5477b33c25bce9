// Package create реализует HTTP-обработчик создания почтового шаблона.
//
// Handler принимает JSON-запрос с названием, темой и телом шаблона,
// валидирует их, извлекает UID автора из контекста и сохраняет шаблон
// через сервис. Маркеры {{key}} сохраняются без подстановки.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/middlewarectx"
	"github.com/magabrotheeeer/email-dispatcher/internal/http/response"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// Request — входные данные для создания шаблона
type Request struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// Service описывает интерфейс бизнес-логики создания шаблона.
type Service interface {
	Create(ctx context.Context, name, subject, body, userUID string) (*models.Script, error)
}

// Handler управляет HTTP-запросами на создание шаблонов.
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
// @Summary Создать шаблон
// @Description Сохраняет новый почтовый шаблон. Маркеры {{key}} остаются без подстановки.
// @Tags Scripts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового шаблона"
// @Success 201 {object} map[string]any "Шаблон создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scripts [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.script.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	// Автор шаблона — слабая ссылка, отсутствие UID не блокирует создание.
	userUID, _ := r.Context().Value(middlewarectx.UserUID).(string)

	script, err := h.service.Create(r.Context(), req.Name, req.Subject, req.Body, userUID)
	if err != nil {
		log.Error("failed to create script", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create script"))
		return
	}

	log.Info("script created", slog.String("id", script.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWith("script", script))
}
