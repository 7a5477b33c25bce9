// Package templater реализует подстановку именованных переменных
// в строки почтовых шаблонов.
//
// Маркер имеет вид {{key}}. Подстановка выполняется только в момент
// отправки письма и никогда не сохраняется обратно в шаблон.
package templater

import "strings"

// Render заменяет каждое вхождение маркера {{key}} на соответствующее
// значение из variables. Маркеры без совпадающего ключа остаются как есть.
// Результат не зависит от порядка обхода ключей: значения переменных
// не содержат чужих маркеров.
func Render(template string, variables map[string]string) string {
	result := template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
