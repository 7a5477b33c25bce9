// Package emaildispatcher предоставляет маршруты для основного приложения.
package emaildispatcher

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/auth/register"
	emailhistory "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/email/history"
	emailsend "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/email/send"
	scriptcreate "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/script/create"
	scriptlist "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/script/list"
	scriptread "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/script/read"
	scriptremove "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/script/remove"
	scriptupdate "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/script/update"
	usercreate "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/user/list"
	userremove "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/user/remove"
	userupdate "github.com/magabrotheeeer/email-dispatcher/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/email-dispatcher/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/email-dispatcher/internal/services/auth"
	dispatchservice "github.com/magabrotheeeer/email-dispatcher/internal/services/dispatch"
	scriptservice "github.com/magabrotheeeer/email-dispatcher/internal/services/script"
	userservice "github.com/magabrotheeeer/email-dispatcher/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, userService *userservice.UserService, scriptService *scriptservice.ScriptService, dispatchService *dispatchservice.DispatchService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))

			r.Get("/scripts", scriptlist.New(logger, scriptService).ServeHTTP)
			r.Post("/scripts", scriptcreate.New(logger, scriptService).ServeHTTP)
			r.Get("/scripts/{id}", scriptread.New(logger, scriptService).ServeHTTP)
			r.Put("/scripts/{id}", scriptupdate.New(logger, scriptService).ServeHTTP)
			r.Delete("/scripts/{id}", scriptremove.New(logger, scriptService).ServeHTTP)

			r.Post("/emails/send", emailsend.New(logger, dispatchService).ServeHTTP)
			r.Get("/emails/history", emailhistory.New(logger, dispatchService).ServeHTTP)

			// Администрирование пользователей
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
				r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
