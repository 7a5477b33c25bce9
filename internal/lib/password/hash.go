// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// Compare сравнивает сохранённое значение с введённым паролем. В хранилище
// могут встречаться старые записи с паролем в открытом виде (инкрементальная
// миграция), такие значения распознаются по отсутствию префикса bcrypt
// и сравниваются напрямую без повторного хеширования.
package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix — маркер хешированного значения: все bcrypt-хеши
// начинаются с "$2" ($2a$, $2b$ и т.д.).
const bcryptPrefix = "$2"

// ErrMismatch возвращается, когда пароль не соответствует сохранённому значению.
var ErrMismatch = errors.New("password does not match")

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Используется для безопасного хранения паролей в базе данных.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Compare сравнивает сохранённое значение пароля с введённым.
//
// Хешированные значения проверяются через bcrypt, значения без префикса
// bcrypt считаются открытым текстом и сравниваются на равенство.
// Возвращает nil при совпадении, иначе ErrMismatch.
func Compare(stored, externalPassword string) error {
	const op = "password.Compare"
	if !strings.HasPrefix(stored, bcryptPrefix) {
		if stored == externalPassword {
			return nil
		}
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	return nil
}

// IsHashed сообщает, хранится ли значение в хешированном виде.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix)
}
