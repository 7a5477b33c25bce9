package filestore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

const usersFile = "users.json"

// userRecord — форма записи пользователя в JSON-файле. В отличие от
// models.User пароль сериализуется: файл и есть хранилище.
type userRecord struct {
	UID      string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func toUserRecord(u models.User) userRecord {
	return userRecord{
		UID:      u.UID,
		Email:    u.Email,
		Password: u.PasswordHash,
		Name:     u.Name,
		Role:     u.Role,
		Active:   u.Active,
	}
}

func fromUserRecord(r userRecord) *models.User {
	return &models.User{
		UID:          r.UID,
		Email:        r.Email,
		PasswordHash: r.Password,
		Name:         r.Name,
		Role:         r.Role,
		Active:       r.Active,
	}
}

// InsertUser добавляет пользователя в файл. Уникальность email обеспечивается
// поиском перед вставкой: других ограничений у файлового хранилища нет.
func (s *Store) InsertUser(_ context.Context, user models.User) (*models.User, error) {
	const op = "filestore.InsertUser"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, r := range records {
		if r.Email == user.Email {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrExists)
		}
	}
	user.UID = uuid.NewString()
	records = append(records, toUserRecord(user))
	if err = writeAll(s, usersFile, records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// FindUserByEmail возвращает пользователя по email или storage.ErrNotFound.
func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	const op = "filestore.FindUserByEmail"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, r := range records {
		if r.Email == email {
			return fromUserRecord(r), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// GetUser возвращает пользователя по UID.
func (s *Store) GetUser(_ context.Context, userUID string) (*models.User, error) {
	const op = "filestore.GetUser"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, r := range records {
		if r.UID == userUID {
			return fromUserRecord(r), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// ListUsers возвращает всех пользователей из файла.
func (s *Store) ListUsers(_ context.Context) ([]*models.User, error) {
	const op = "filestore.ListUsers"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]*models.User, 0, len(records))
	for _, r := range records {
		result = append(result, fromUserRecord(r))
	}
	return result, nil
}

// UpdateUser применяет частичное обновление пользователя в файле.
func (s *Store) UpdateUser(_ context.Context, userUID string, patch models.UserPatch) (*models.User, error) {
	const op = "filestore.UpdateUser"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i, r := range records {
		if r.UID != userUID {
			continue
		}
		if patch.Email != nil {
			for _, other := range records {
				if other.UID != userUID && other.Email == *patch.Email {
					return nil, fmt.Errorf("%s: %w", op, storage.ErrExists)
				}
			}
			records[i].Email = *patch.Email
		}
		if patch.Password != nil {
			records[i].Password = *patch.Password
		}
		if patch.Name != nil {
			records[i].Name = *patch.Name
		}
		if patch.Role != nil {
			records[i].Role = *patch.Role
		}
		if patch.Active != nil {
			records[i].Active = *patch.Active
		}
		if err = writeAll(s, usersFile, records); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return fromUserRecord(records[i]), nil
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// DeleteUser удаляет пользователя из файла по UID.
func (s *Store) DeleteUser(_ context.Context, userUID string) error {
	const op = "filestore.DeleteUser"
	records, err := readAll[userRecord](s, usersFile)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i, r := range records {
		if r.UID == userUID {
			records = append(records[:i], records[i+1:]...)
			if err = writeAll(s, usersFile, records); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}
