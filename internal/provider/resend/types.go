package resend

// sendRequest — тело запроса POST /emails к API Resend.
type sendRequest struct {
	From    string   `json:"from"` // "Имя <адрес>"
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse — успешный ответ API: идентификатор принятого письма.
type sendResponse struct {
	ID string `json:"id"`
}

// errorResponse — структурированная ошибка API.
type errorResponse struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
