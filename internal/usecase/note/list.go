package note

import (
	"context"

	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/models"
)

type ListNotes struct {
	repo domain.Repository
}

func NewListNotes(repo domain.Repository) *ListNotes {
	return &ListNotes{repo: repo}
}

// Execute lists the notes for one casita, newest first.
func (uc *ListNotes) Execute(
	ctx context.Context,
	casita string,
) ([]models.Note, error) {
	return uc.repo.ListNotesByCasita(ctx, casita)
}
