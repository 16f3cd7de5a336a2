package note

import (
	"context"
	"time"

	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/models"
	"github.com/puravida-ops/casitas-api/internal/storage"
	"github.com/puravida-ops/casitas-api/internal/validators"
)

type CreateNoteInput struct {
	Fecha   time.Time // zero value means "now"
	Casita  string
	Usuario string
	Nota    string

	Evidencia *evidence.File
}

type CreateNote struct {
	repo     domain.Repository
	uploader storage.Uploader
	folder   string
	clock    func() time.Time
}

func NewCreateNote(
	repo domain.Repository,
	uploader storage.Uploader,
	folder string,
) *CreateNote {
	return &CreateNote{
		repo:     repo,
		uploader: uploader,
		folder:   folder,
		clock:    time.Now,
	}
}

func (uc *CreateNote) Execute(
	ctx context.Context,
	in CreateNoteInput,
) (*models.Note, error) {

	n := models.Note{
		Fecha:   in.Fecha,
		Casita:  in.Casita,
		Usuario: in.Usuario,
		Nota:    in.Nota,
	}
	if n.Fecha.IsZero() {
		n.Fecha = uc.clock()
	}

	if err := validators.ValidateNewNote(&n); err != nil {
		return nil, err
	}

	if in.Evidencia != nil {
		url, err := evidence.Process(ctx, uc.uploader, uc.folder, *in.Evidencia)
		if err != nil {
			return nil, err
		}
		n.Evidencia = url
	}

	if err := uc.repo.CreateNote(ctx, &n); err != nil {
		return nil, err
	}

	return &n, nil
}
