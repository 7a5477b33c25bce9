// Package models содержит модель записи об отправке письма.
package models

import "time"

// Статусы записи об отправке письма.
const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)

// SendEmailRequest — входные данные для отправки письма. Subject и Body
// могут содержать маркеры {{key}}, значения для подстановки — в Variables.
type SendEmailRequest struct {
	From      string            `json:"from" validate:"required,email"`
	FromName  string            `json:"fromName" validate:"required"`
	To        string            `json:"to" validate:"required,email"`
	Subject   string            `json:"subject" validate:"required"`
	Body      string            `json:"body" validate:"required"`
	Variables map[string]string `json:"variables,omitempty"`
}

// Email представляет одну попытку отправки письма и её результат.
// Запись создаётся в момент отправки со статусом pending, переходит
// в sent или failed и после этого не меняется.
type Email struct {
	ID           string    `json:"id"`
	From         string    `json:"from"`     // Адрес отправителя (копия на момент отправки)
	FromName     string    `json:"fromName"` // Отображаемое имя отправителя
	To           string    `json:"to"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sentAt"`
	Status       string    `json:"status"`      // pending, sent или failed
	APIProvider  string    `json:"apiProvider"` // Метка провайдера доставки
	ErrorMessage string    `json:"errorMessage,omitempty"`
}
