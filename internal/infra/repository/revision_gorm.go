package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/puravida-ops/casitas-api/internal/models"
)

type RevisionGormRepository struct {
	db *gorm.DB
}

func NewRevisionGormRepository(db *gorm.DB) *RevisionGormRepository {
	return &RevisionGormRepository{db: db}
}

// --------------------------------------------------
// Revisions
// --------------------------------------------------

func (r *RevisionGormRepository) CreateRevision(
	ctx context.Context,
	rev *models.Revision,
) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *RevisionGormRepository) ListRevisions(
	ctx context.Context,
) ([]models.Revision, error) {

	var revs []models.Revision
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&revs).Error; err != nil {
		return nil, err
	}
	return revs, nil
}

func (r *RevisionGormRepository) GetRevision(
	ctx context.Context,
	id uint,
) (*models.Revision, error) {

	var rev models.Revision
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *RevisionGormRepository) UpdateRevision(
	ctx context.Context,
	rev *models.Revision,
) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

// --------------------------------------------------
// Edit log
// --------------------------------------------------

func (r *RevisionGormRepository) CreateEditLogs(
	ctx context.Context,
	logs []models.EditLog,
) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&logs).Error
}

func (r *RevisionGormRepository) ListEditLogs(
	ctx context.Context,
	revisionID uint,
) ([]models.EditLog, error) {

	var logs []models.EditLog
	if err := r.db.WithContext(ctx).
		Where("revision_id = ?", revisionID).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// --------------------------------------------------
// Notes
// --------------------------------------------------

func (r *RevisionGormRepository) CreateNote(
	ctx context.Context,
	note *models.Note,
) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *RevisionGormRepository) ListNotesByCasita(
	ctx context.Context,
	casita string,
) ([]models.Note, error) {

	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("casita = ?", casita).
		Order("id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
