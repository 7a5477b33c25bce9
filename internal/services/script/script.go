// Package services содержит логику бизнес-уровня для работы с почтовыми шаблонами.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// ScriptStore описывает контракт хранилища почтовых шаблонов.
type ScriptStore interface {
	InsertScript(ctx context.Context, script models.Script) (*models.Script, error)
	GetScript(ctx context.Context, id string) (*models.Script, error)
	ListScripts(ctx context.Context) ([]*models.Script, error)
	UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error)
	DeleteScript(ctx context.Context, id string) error
}

// ScriptService отвечает за операции над почтовыми шаблонами.
// Шаблоны хранятся с немодифицированными маркерами {{key}}:
// подстановка значений происходит только в момент отправки.
type ScriptService struct {
	scripts ScriptStore
}

// NewScriptService создает новый экземпляр ScriptService.
func NewScriptService(scripts ScriptStore) *ScriptService {
	return &ScriptService{scripts: scripts}
}

// List возвращает все шаблоны.
func (s *ScriptService) List(ctx context.Context) ([]*models.Script, error) {
	const op = "services.script.List"
	scripts, err := s.scripts.ListScripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return scripts, nil
}

// Get возвращает шаблон по идентификатору.
func (s *ScriptService) Get(ctx context.Context, id string) (*models.Script, error) {
	const op = "services.script.Get"
	script, err := s.scripts.GetScript(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return script, nil
}

// Create сохраняет новый шаблон. UserUID фиксирует автора шаблона.
func (s *ScriptService) Create(ctx context.Context, name, subject, body, userUID string) (*models.Script, error) {
	const op = "services.script.Create"
	script := models.Script{
		Name:    name,
		Subject: subject,
		Body:    body,
		UserUID: userUID,
	}
	created, err := s.scripts.InsertScript(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// Update применяет частичное обновление шаблона.
func (s *ScriptService) Update(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error) {
	const op = "services.script.Update"
	updated, err := s.scripts.UpdateScript(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete удаляет шаблон по идентификатору.
func (s *ScriptService) Delete(ctx context.Context, id string) error {
	const op = "services.script.Delete"
	if err := s.scripts.DeleteScript(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
