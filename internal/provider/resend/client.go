// Package resend реализует клиент транзакционного почтового API Resend.
//
// Клиент выполняет один синхронный вызов отправки: имя и адрес отправителя,
// получатель, тема и HTML-тело. Ошибка провайдера возвращается со
// структурированным сообщением, автоматических повторов нет.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client инкапсулирует доступ к HTTP API Resend.
type Client struct {
	apiKey     string
	apiURL     string
	fromEmail  string // Верифицированный адрес отправителя домена
	httpClient *http.Client
}

// NewClient создаёт новый клиент Resend. Письма уходят с верифицированного
// адреса fromEmail, отображаемое имя отправителя подставляется на каждый вызов.
func NewClient(apiKey, apiURL, fromEmail string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		fromEmail:  fromEmail,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FromEmail возвращает адрес отправителя, с которого уходят письма.
func (c *Client) FromEmail() string {
	return c.fromEmail
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.apiURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Send отправляет одно письмо и возвращает идентификатор, присвоенный
// провайдером. Любой не-2xx ответ превращается в ошибку с сообщением
// провайдера.
func (c *Client) Send(ctx context.Context, fromName, to, subject, htmlBody string) (string, error) {
	const op = "resend.Send"

	reqBody := sendRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, c.fromEmail),
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/emails", reqBody)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return "", fmt.Errorf("%s: %s", op, apiErr.Message)
		}
		return "", fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var sendResp sendResponse
	if err = json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return sendResp.ID, nil
}
