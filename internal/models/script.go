// Package models содержит доменные структуры почтовых шаблонов ("скриптов"),
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Script представляет сохранённый почтовый шаблон: тема и тело
// с маркерами вида {{key}}, подставляемыми в момент отправки.
type Script struct {
	ID        string    `json:"id"`                // Уникальный идентификатор шаблона
	Name      string    `json:"name"`              // Название шаблона
	Subject   string    `json:"subject"`           // Тема письма, может содержать маркеры
	Body      string    `json:"body"`              // Тело письма, может содержать маркеры
	UserUID   string    `json:"user_id,omitempty"` // Автор шаблона (слабая ссылка, может быть пустой)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScriptPatch описывает частичное обновление шаблона,
// nil означает "поле не меняется".
type ScriptPatch struct {
	Name    *string `json:"name,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}
