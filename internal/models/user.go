// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля, роль и признак активности.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string `json:"id"`     // Уникальный идентификатор пользователя
	Email        string `json:"email"`  // Электронная почта (уникальная)
	PasswordHash string `json:"-"`      // Хэш пароля пользователя, наружу не отдается
	Name         string `json:"name"`   // Отображаемое имя
	Role         string `json:"role"`   // Роль пользователя, admin или user
	Active       bool   `json:"active"` // Признак активности учётной записи
}

// UserPatch описывает частичное обновление пользователя: заполняются
// только изменяемые поля, nil означает "не трогать".
type UserPatch struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}
