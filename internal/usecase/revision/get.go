package revision

import (
	"context"

	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/models"
)

// RevisionDetail is everything the detail view needs in one shot:
// the record, the notes for the same casita and its edit history.
type RevisionDetail struct {
	Revision models.Revision  `json:"revision"`
	Notas    []models.Note    `json:"notas"`
	EditLogs []models.EditLog `json:"edit_logs"`
}

type GetRevision struct {
	repo domain.Repository
}

func NewGetRevision(repo domain.Repository) *GetRevision {
	return &GetRevision{repo: repo}
}

func (uc *GetRevision) Execute(
	ctx context.Context,
	id uint,
) (*RevisionDetail, error) {

	rev, err := uc.repo.GetRevision(ctx, id)
	if err != nil {
		return nil, err
	}

	notes, err := uc.repo.ListNotesByCasita(ctx, rev.Casita)
	if err != nil {
		return nil, err
	}

	logs, err := uc.repo.ListEditLogs(ctx, rev.ID)
	if err != nil {
		return nil, err
	}

	return &RevisionDetail{
		Revision: *rev,
		Notas:    notes,
		EditLogs: logs,
	}, nil
}
