package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage"
)

// InsertScript сохраняет новый почтовый шаблон и возвращает его копию
// с присвоенным идентификатором и временными метками.
// Уникальность имени или темы не требуется.
func (s *Storage) InsertScript(ctx context.Context, script models.Script) (*models.Script, error) {
	const op = "storage.InsertScript"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var userUID sql.NullString
	if script.UserUID != "" {
		userUID = sql.NullString{String: script.UserUID, Valid: true}
	}
	query := `INSERT INTO scripts (name, subject, body, user_uid)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, updated_at;`
	if err := s.DB.QueryRowContext(ctx, query,
		script.Name, script.Subject, script.Body, userUID).
		Scan(&script.ID, &script.CreatedAt, &script.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &script, nil
}

// GetScript возвращает шаблон по идентификатору или storage.ErrNotFound.
func (s *Storage) GetScript(ctx context.Context, id string) (*models.Script, error) {
	const op = "storage.GetScript"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, subject, body, user_uid, created_at, updated_at
			  FROM scripts
			  WHERE id = $1`
	sc := &models.Script{}
	var userUID sql.NullString
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&sc.ID, &sc.Name, &sc.Subject, &sc.Body, &userUID,
		&sc.CreatedAt, &sc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if userUID.Valid {
		sc.UserUID = userUID.String
	}
	return sc, nil
}

// ListScripts возвращает все шаблоны, отсортированные по дате создания.
func (s *Storage) ListScripts(ctx context.Context) ([]*models.Script, error) {
	const op = "storage.ListScripts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, subject, body, user_uid, created_at, updated_at
			  FROM scripts
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Script
	for rows.Next() {
		var sc models.Script
		var userUID sql.NullString
		if err = rows.Scan(&sc.ID, &sc.Name, &sc.Subject, &sc.Body, &userUID,
			&sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if userUID.Valid {
			sc.UserUID = userUID.String
		}
		result = append(result, &sc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateScript применяет частичное обновление шаблона, обновляет updated_at
// и возвращает новую версию записи. Поля со значением nil не меняются.
func (s *Storage) UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error) {
	const op = "storage.UpdateScript"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE scripts
			  SET name = COALESCE($1, name),
			      subject = COALESCE($2, subject),
			      body = COALESCE($3, body),
			      updated_at = $4
			  WHERE id = $5
			  RETURNING id, name, subject, body, user_uid, created_at, updated_at`
	sc := &models.Script{}
	var userUID sql.NullString
	row := s.DB.QueryRowContext(ctx, query,
		patch.Name, patch.Subject, patch.Body, time.Now().UTC(), id)
	if err := row.Scan(&sc.ID, &sc.Name, &sc.Subject, &sc.Body, &userUID,
		&sc.CreatedAt, &sc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if userUID.Valid {
		sc.UserUID = userUID.String
	}
	return sc, nil
}

// DeleteScript удаляет шаблон по идентификатору.
func (s *Storage) DeleteScript(ctx context.Context, id string) error {
	const op = "storage.DeleteScript"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM scripts WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}
