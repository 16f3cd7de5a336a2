package revision

import (
	"context"

	"github.com/puravida-ops/casitas-api/internal/models"
)

type Repository interface {
	// -------- Revisions --------
	CreateRevision(
		ctx context.Context,
		rev *models.Revision,
	) error

	ListRevisions(
		ctx context.Context,
	) ([]models.Revision, error)

	GetRevision(
		ctx context.Context,
		id uint,
	) (*models.Revision, error)

	UpdateRevision(
		ctx context.Context,
		rev *models.Revision,
	) error

	// -------- Edit log (append-only) --------
	CreateEditLogs(
		ctx context.Context,
		logs []models.EditLog,
	) error

	ListEditLogs(
		ctx context.Context,
		revisionID uint,
	) ([]models.EditLog, error)

	// -------- Notes --------
	CreateNote(
		ctx context.Context,
		note *models.Note,
	) error

	ListNotesByCasita(
		ctx context.Context,
		casita string,
	) ([]models.Note, error)
}
