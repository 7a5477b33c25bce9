// Package storage определяет общие для всех хранилищ ошибки доменного уровня.
//
// Эти ошибки отличают осмысленный результат операции (запись не найдена,
// запись уже существует) от отказа самого бэкенда: первые доходят до
// HTTP-слоя и превращаются в 404/409, вторые перехватываются политикой
// переключения на резервное файловое хранилище.
package storage

import "errors"

var (
	// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrExists возвращается при нарушении уникальности (дубликат email).
	ErrExists = errors.New("record already exists")
)

// IsDomain сообщает, является ли ошибка доменным результатом операции,
// а не отказом бэкенда. Доменные ошибки не должны приводить к переключению
// на резервное хранилище.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrExists)
}
