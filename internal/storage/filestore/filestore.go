// Package filestore реализует резервное файловое хранилище с той же схемой
// данных, что и основное: по одному плоскому JSON-массиву на ресурс
// (users.json, scripts.json). Файл создаётся пустым при первом обращении.
//
// Запись выполняется по схеме "прочитать файл целиком — изменить в памяти —
// перезаписать файл". Синхронизации между конкурентными записями нет:
// одновременные записи в один файл соревнуются, побеждает последняя.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store инкапсулирует каталог с резервными JSON-файлами.
type Store struct {
	dir string
}

// New создаёт Store поверх указанного каталога, создавая его при необходимости.
func New(dir string) (*Store, error) {
	const op = "filestore.New"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir}, nil
}

// readAll читает JSON-массив из файла. Отсутствующий файл создаётся пустым.
func readAll[T any](s *Store, filename string) ([]T, error) {
	const op = "filestore.readAll"
	path := filepath.Join(s.dir, filename)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err = os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}

// writeAll перезаписывает файл целиком новым содержимым массива.
func writeAll[T any](s *Store, filename string, records []T) error {
	const op = "filestore.writeAll"
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
