package revision

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/models"
)

// fakeRepo records every call in order so tests can assert the
// update-then-audit sequence.
type fakeRepo struct {
	calls []string

	stored *models.Revision
	notes  []models.Note

	created *models.Revision
	updated *models.Revision
	logs    []models.EditLog

	getErr    error
	createErr error
	updateErr error
	logsErr   error
}

func (f *fakeRepo) CreateRevision(ctx context.Context, rev *models.Revision) error {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return f.createErr
	}
	rev.ID = 1
	f.created = rev
	return nil
}

func (f *fakeRepo) ListRevisions(ctx context.Context) ([]models.Revision, error) {
	f.calls = append(f.calls, "list")
	if f.stored == nil {
		return nil, nil
	}
	return []models.Revision{*f.stored}, nil
}

func (f *fakeRepo) GetRevision(ctx context.Context, id uint) (*models.Revision, error) {
	f.calls = append(f.calls, "get")
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.stored
	return &cp, nil
}

func (f *fakeRepo) UpdateRevision(ctx context.Context, rev *models.Revision) error {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = rev
	return nil
}

func (f *fakeRepo) CreateEditLogs(ctx context.Context, logs []models.EditLog) error {
	f.calls = append(f.calls, "edit_logs")
	if f.logsErr != nil {
		return f.logsErr
	}
	f.logs = append(f.logs, logs...)
	return nil
}

func (f *fakeRepo) ListEditLogs(ctx context.Context, revisionID uint) ([]models.EditLog, error) {
	return f.logs, nil
}

func (f *fakeRepo) CreateNote(ctx context.Context, note *models.Note) error {
	f.calls = append(f.calls, "create_note")
	note.ID = uint(len(f.notes) + 1)
	f.notes = append(f.notes, *note)
	return nil
}

func (f *fakeRepo) ListNotesByCasita(ctx context.Context, casita string) ([]models.Note, error) {
	return f.notes, nil
}

// fakeUploader returns canned URLs and remembers what it received.
type fakeUploader struct {
	urls     []string
	folders  []string
	uploaded int
	err      error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, filename, baseFolder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.folders = append(f.folders, baseFolder)
	url := "https://cdn.example.com/" + filename
	if f.uploaded < len(f.urls) {
		url = f.urls[f.uploaded]
	}
	f.uploaded++
	return url, nil
}

func photo(t *testing.T, name string) *evidence.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return &evidence.File{Name: name, Data: buf.Bytes()}
}

func baseRevision() models.Revision {
	return models.Revision{
		ID:                 7,
		Casita:             "3",
		QuienRevisa:        "Ricardo B",
		CajaFuerte:         "No",
		PuertasVentanas:    "Todo bien",
		Chromecast:         "02",
		Binoculares:        "01",
		TrapoBinoculares:   "Si",
		Speaker:            "01",
		USBSpeaker:         "01",
		ControlesTV:        "02",
		Secadora:           "01",
		AccesoriosSecadora: "03",
		Steamer:            "01",
		BolsaVapor:         "Si",
		PlanchaCabello:     "01",
		Bulto:              "01",
		Sombrero:           "02",
		BolsoYute:          "02",
		CamasOrdenadas:     "Si",
		ColaCaballo:        "No",
	}
}
