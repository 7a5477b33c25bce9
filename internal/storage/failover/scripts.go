package failover

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/email-dispatcher/internal/models"
)

// ScriptStore описывает контракт хранилища почтовых шаблонов, общий для
// основного и резервного бэкендов.
type ScriptStore interface {
	InsertScript(ctx context.Context, script models.Script) (*models.Script, error)
	GetScript(ctx context.Context, id string) (*models.Script, error)
	ListScripts(ctx context.Context) ([]*models.Script, error)
	UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error)
	DeleteScript(ctx context.Context, id string) error
}

// Scripts объединяет основное и резервное хранилища шаблонов
// под общей политикой переключения.
type Scripts struct {
	primary  ScriptStore
	fallback ScriptStore
	log      *slog.Logger
}

// NewScripts создает обёртку над двумя хранилищами шаблонов.
func NewScripts(primary, fallback ScriptStore, log *slog.Logger) *Scripts {
	return &Scripts{primary: primary, fallback: fallback, log: log}
}

// InsertScript сохраняет шаблон, при отказе основного бэкенда — в файл.
func (s *Scripts) InsertScript(ctx context.Context, script models.Script) (*models.Script, error) {
	return attempt(s.log, "failover.InsertScript",
		func() (*models.Script, error) { return s.primary.InsertScript(ctx, script) },
		func() (*models.Script, error) { return s.fallback.InsertScript(ctx, script) })
}

// GetScript возвращает шаблон по идентификатору.
func (s *Scripts) GetScript(ctx context.Context, id string) (*models.Script, error) {
	return attempt(s.log, "failover.GetScript",
		func() (*models.Script, error) { return s.primary.GetScript(ctx, id) },
		func() (*models.Script, error) { return s.fallback.GetScript(ctx, id) })
}

// ListScripts возвращает все шаблоны.
func (s *Scripts) ListScripts(ctx context.Context) ([]*models.Script, error) {
	return attempt(s.log, "failover.ListScripts",
		func() ([]*models.Script, error) { return s.primary.ListScripts(ctx) },
		func() ([]*models.Script, error) { return s.fallback.ListScripts(ctx) })
}

// UpdateScript применяет частичное обновление шаблона.
func (s *Scripts) UpdateScript(ctx context.Context, id string, patch models.ScriptPatch) (*models.Script, error) {
	return attempt(s.log, "failover.UpdateScript",
		func() (*models.Script, error) { return s.primary.UpdateScript(ctx, id, patch) },
		func() (*models.Script, error) { return s.fallback.UpdateScript(ctx, id, patch) })
}

// DeleteScript удаляет шаблон по идентификатору.
func (s *Scripts) DeleteScript(ctx context.Context, id string) error {
	return attemptErr(s.log, "failover.DeleteScript",
		func() error { return s.primary.DeleteScript(ctx, id) },
		func() error { return s.fallback.DeleteScript(ctx, id) })
}
