// Package services содержит логику бизнес-уровня для администрирования пользователей.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/email-dispatcher/internal/lib/password"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// UserStore описывает контракт хранилища пользователей.
type UserStore interface {
	InsertUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, userUID string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, userUID string) error
}

// UserService отвечает за операции администратора над учётными записями.
type UserService struct {
	users UserStore
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List возвращает всех пользователей.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	const op = "services.user.List"
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Get возвращает пользователя по UID.
func (s *UserService) Get(ctx context.Context, userUID string) (*models.User, error) {
	const op = "services.user.Get"
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// Create создает пользователя от имени администратора.
// Пустая роль трактуется как "user", учётная запись создается активной.
func (s *UserService) Create(ctx context.Context, email, rawPassword, name, role string) (*models.User, error) {
	const op = "services.user.Create"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if role == "" {
		role = "user"
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Role:         role,
		Active:       true,
	}
	created, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Update применяет частичное обновление пользователя.
// Новый пароль перед сохранением хэшируется.
func (s *UserService) Update(ctx context.Context, userUID string, patch models.UserPatch) (*models.User, error) {
	const op = "services.user.Update"
	if patch.Password != nil {
		hashed, err := password.GetHash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		patch.Password = &hashed
	}
	updated, err := s.users.UpdateUser(ctx, userUID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete удаляет пользователя по UID.
func (s *UserService) Delete(ctx context.Context, userUID string) error {
	const op = "services.user.Delete"
	if err := s.users.DeleteUser(ctx, userUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
