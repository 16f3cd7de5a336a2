package revision

import (
	"context"
	"time"

	"github.com/puravida-ops/casitas-api/internal/cache"
	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/models"
	"github.com/puravida-ops/casitas-api/internal/storage"
)

type EditRevisionInput struct {
	ID     uint
	Editor string

	// Fields is the edited copy of every auditable field. Slots with
	// a new photo are overwritten after upload; otherwise the
	// submitted URL (usually the stored one) is kept as-is.
	Fields models.Revision

	Evidencias [3]*evidence.File
}

type EditRevision struct {
	repo     domain.Repository
	uploader storage.Uploader
	cache    *cache.RevisionCache
	folder   string
	clock    func() time.Time
}

func NewEditRevision(
	repo domain.Repository,
	uploader storage.Uploader,
	cache *cache.RevisionCache,
	folder string,
) *EditRevision {
	return &EditRevision{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		folder:   folder,
		clock:    time.Now,
	}
}

// Execute records field-level changes and persists the edit.
//
// Ordering is deliberate: the record is updated first, the audit
// batch second, with no transaction across the two. A failed audit
// insert surfaces to the caller while the record stays updated.
func (uc *EditRevision) Execute(
	ctx context.Context,
	in EditRevisionInput,
) (*models.Revision, []models.EditLog, error) {

	stored, err := uc.repo.GetRevision(ctx, in.ID)
	if err != nil {
		return nil, nil, err
	}

	// New photos replace their slot before the diff so the change
	// shows up as old URL -> new URL.
	slots := [3]*string{&in.Fields.Evidencia01, &in.Fields.Evidencia02, &in.Fields.Evidencia03}
	for i, f := range in.Evidencias {
		if f == nil {
			continue
		}
		url, err := evidence.Process(ctx, uc.uploader, uc.folder, *f)
		if err != nil {
			return nil, nil, err
		}
		*slots[i] = url
	}

	// Strict comparison over the fixed field set. Identity, creation
	// timestamp and edit metadata never participate.
	var logs []models.EditLog
	for _, field := range models.AuditableFields {
		prev := stored.FieldValue(field)
		next := in.Fields.FieldValue(field)
		if prev == next {
			continue
		}
		logs = append(logs, models.EditLog{
			RevisionID:    stored.ID,
			Field:         field,
			PreviousValue: prev,
			NewValue:      next,
			Editor:        in.Editor,
		})
		stored.SetFieldValue(field, next)
	}

	// Edit metadata updates even on a zero-field diff.
	now := uc.clock()
	stored.FechaEdicion = &now
	stored.QuienEdito = in.Editor

	if err := uc.repo.UpdateRevision(ctx, stored); err != nil {
		return nil, nil, err
	}

	if len(logs) > 0 {
		if err := uc.repo.CreateEditLogs(ctx, logs); err != nil {
			// Record already updated; audit trail is incomplete.
			return stored, logs, err
		}
	}

	uc.cache.Invalidate(ctx)

	return stored, logs, nil
}
