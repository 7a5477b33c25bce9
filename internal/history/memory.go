package history

import (
	"context"
	"sync"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// MemoryStore хранит журнал отправок в памяти процесса.
// Содержимое теряется при рестарте и не разделяется между экземплярами.
type MemoryStore struct {
	mu     sync.RWMutex
	emails []models.Email
}

// NewMemoryStore создаёт пустой журнал в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append добавляет запись в конец журнала.
func (m *MemoryStore) Append(_ context.Context, email models.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
	return nil
}

// List возвращает копию журнала, при непустом fromEmail — только письма
// этого отправителя.
func (m *MemoryStore) List(_ context.Context, fromEmail string) ([]models.Email, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]models.Email, 0, len(m.emails))
	for _, e := range m.emails {
		if fromEmail == "" || e.From == fromEmail {
			result = append(result, e)
		}
	}
	return result, nil
}
