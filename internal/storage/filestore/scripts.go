package filestore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

const scriptsFile = "scripts.json"

// InsertScript добавляет шаблон в файл, присваивая идентификатор
// и временные метки.
func (s *Store) InsertScript(_ context.Context, script models.Script) (*models.Script, error) {
	const op = "filestore.InsertScript"
	records, err := readAll[models.Script](s, scriptsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := time.Now().UTC()
	script.ID = uuid.NewString()
	script.CreatedAt = now
	script.UpdatedAt = now
	records = append(records, script)
	if err = writeAll(s, scriptsFile, records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &script, nil
}

// GetScript возвращает шаблон по идентификатору или storage.ErrNotFound.
func (s *Store) GetScript(_ context.Context, id string) (*models.Script, error) {
	const op = "filestore.GetScript"
	records, err := readAll[models.Script](s, scriptsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, r := range records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// ListScripts возвращает все шаблоны из файла.
func (s *Store) ListScripts(_ context.Context) ([]*models.Script, error) {
	const op = "filestore.ListScripts"
	records, err := readAll[models.Script](s, scriptsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]*models.Script, 0, len(records))
	for i := range records {
		result = append(result, &records[i])
	}
	return result, nil
}

// UpdateScript применяет частичное обновление шаблона и обновляет updated_at.
func (s *Store) UpdateScript(_ context.Context, id string, patch models.ScriptPatch) (*models.Script, error) {
	const op = "filestore.UpdateScript"
	records, err := readAll[models.Script](s, scriptsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if patch.Name != nil {
			records[i].Name = *patch.Name
		}
		if patch.Subject != nil {
			records[i].Subject = *patch.Subject
		}
		if patch.Body != nil {
			records[i].Body = *patch.Body
		}
		records[i].UpdatedAt = time.Now().UTC()
		if err = writeAll(s, scriptsFile, records); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &records[i], nil
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// DeleteScript удаляет шаблон из файла по идентификатору.
func (s *Store) DeleteScript(_ context.Context, id string) error {
	const op = "filestore.DeleteScript"
	records, err := readAll[models.Script](s, scriptsFile)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i, r := range records {
		if r.ID == id {
			records = append(records[:i], records[i+1:]...)
			if err = writeAll(s, scriptsFile, records); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}
