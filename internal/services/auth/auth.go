// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/email-dispatcher/internal/lib/jwt"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/password"
	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль,
// а также для неактивных учётных записей: причина отказа наружу не раскрывается.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// InsertUser сохраняет нового пользователя и возвращает его с идентификатором.
	InsertUser(ctx context.Context, user models.User) (*models.User, error)

	// FindUserByEmail возвращает пользователя по email или storage.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию токена сессии.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью "user".
// Дубликат email доходит до вызывающего как storage.ErrExists.
// Возвращает созданного пользователя и подписанный токен сессии.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, name string) (*models.User, string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Role:         "user", // дефолтная роль при регистрации
		Active:       true,
	}
	created, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return nil, "", err
	}
	token, err := s.jwtMaker.GenerateToken(created.UID, created.Email, created.Name, created.Role)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login проверяет пароль пользователя и генерирует токен сессии.
// Неактивные учётные записи и неизвестные email дают ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.Active {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken проверяет токен сессии и возвращает его claims.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	const op = "services.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}
