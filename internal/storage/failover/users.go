package failover

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// UserStore описывает контракт хранилища пользователей, общий для
// основного и резервного бэкендов.
type UserStore interface {
	InsertUser(ctx context.Context, user models.User) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, userUID string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, userUID string) error
}

// Users объединяет основное и резервное хранилища пользователей
// под общей политикой переключения.
type Users struct {
	primary  UserStore
	fallback UserStore
	log      *slog.Logger
}

// NewUsers создает обёртку над двумя хранилищами пользователей.
func NewUsers(primary, fallback UserStore, log *slog.Logger) *Users {
	return &Users{primary: primary, fallback: fallback, log: log}
}

// InsertUser сохраняет пользователя, при отказе основного бэкенда — в файл.
func (u *Users) InsertUser(ctx context.Context, user models.User) (*models.User, error) {
	return attempt(u.log, "failover.InsertUser",
		func() (*models.User, error) { return u.primary.InsertUser(ctx, user) },
		func() (*models.User, error) { return u.fallback.InsertUser(ctx, user) })
}

// FindUserByEmail ищет пользователя по email.
func (u *Users) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return attempt(u.log, "failover.FindUserByEmail",
		func() (*models.User, error) { return u.primary.FindUserByEmail(ctx, email) },
		func() (*models.User, error) { return u.fallback.FindUserByEmail(ctx, email) })
}

// GetUser возвращает пользователя по UID.
func (u *Users) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	return attempt(u.log, "failover.GetUser",
		func() (*models.User, error) { return u.primary.GetUser(ctx, userUID) },
		func() (*models.User, error) { return u.fallback.GetUser(ctx, userUID) })
}

// ListUsers возвращает всех пользователей.
func (u *Users) ListUsers(ctx context.Context) ([]*models.User, error) {
	return attempt(u.log, "failover.ListUsers",
		func() ([]*models.User, error) { return u.primary.ListUsers(ctx) },
		func() ([]*models.User, error) { return u.fallback.ListUsers(ctx) })
}

// UpdateUser применяет частичное обновление пользователя.
func (u *Users) UpdateUser(ctx context.Context, userUID string, patch models.UserPatch) (*models.User, error) {
	return attempt(u.log, "failover.UpdateUser",
		func() (*models.User, error) { return u.primary.UpdateUser(ctx, userUID, patch) },
		func() (*models.User, error) { return u.fallback.UpdateUser(ctx, userUID, patch) })
}

// DeleteUser удаляет пользователя по UID.
func (u *Users) DeleteUser(ctx context.Context, userUID string) error {
	return attemptErr(u.log, "failover.DeleteUser",
		func() error { return u.primary.DeleteUser(ctx, userUID) },
		func() error { return u.fallback.DeleteUser(ctx, userUID) })
}
