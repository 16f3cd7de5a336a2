package revision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puravida-ops/casitas-api/internal/evidence"
)

func newEditUC(repo *fakeRepo) *EditRevision {
	uc := NewEditRevision(repo, &fakeUploader{}, nil, "prueba-imagenes")
	uc.clock = func() time.Time {
		return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	}
	return uc
}

func TestEditRevision_NoChanges(t *testing.T) {
	stored := baseRevision()
	repo := &fakeRepo{stored: &stored}
	uc := newEditUC(repo)

	rev, logs, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:     7,
		Editor: "Maria",
		Fields: stored,
	})
	require.NoError(t, err)

	assert.Empty(t, logs)
	assert.NotContains(t, repo.calls, "edit_logs")

	// Edit metadata is stamped even when nothing changed.
	require.NotNil(t, rev.FechaEdicion)
	assert.Equal(t, "Maria", rev.QuienEdito)
	assert.Equal(t, []string{"get", "update"}, repo.calls)
}

func TestEditRevision_SingleFieldChange(t *testing.T) {
	stored := baseRevision()
	repo := &fakeRepo{stored: &stored}
	uc := newEditUC(repo)

	edited := stored
	edited.CajaFuerte = "Check in"

	rev, logs, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:     7,
		Editor: "Maria",
		Fields: edited,
	})
	require.NoError(t, err)

	require.Len(t, logs, 1)
	log := logs[0]
	assert.Equal(t, uint(7), log.RevisionID)
	assert.Equal(t, "caja_fuerte", log.Field)
	assert.Equal(t, "No", log.PreviousValue)
	assert.Equal(t, "Check in", log.NewValue)
	assert.Equal(t, "Maria", log.Editor)

	assert.Equal(t, "[7] caja_fuerte: No", log.LegacyPrevious())
	assert.Equal(t, "[7] caja_fuerte: Check in", log.LegacyNew())

	assert.Equal(t, "Check in", rev.CajaFuerte)
}

func TestEditRevision_MultipleChangesKeepFieldOrder(t *testing.T) {
	stored := baseRevision()
	repo := &fakeRepo{stored: &stored}
	uc := newEditUC(repo)

	edited := stored
	edited.Notas = "revisado de nuevo"
	edited.Casita = "4"

	_, logs, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:     7,
		Editor: "Maria",
		Fields: edited,
	})
	require.NoError(t, err)

	require.Len(t, logs, 2)
	assert.Equal(t, "casita", logs[0].Field)
	assert.Equal(t, "notas", logs[1].Field)
}

func TestEditRevision_UpdateBeforeAudit(t *testing.T) {
	stored := baseRevision()
	repo := &fakeRepo{stored: &stored}
	uc := newEditUC(repo)

	edited := stored
	edited.Bulto = "00"

	_, _, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:     7,
		Editor: "Maria",
		Fields: edited,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"get", "update", "edit_logs"}, repo.calls)
}

func TestEditRevision_AuditFailureLeavesRecordUpdated(t *testing.T) {
	stored := baseRevision()
	auditErr := errors.New("insert failed")
	repo := &fakeRepo{stored: &stored, logsErr: auditErr}
	uc := newEditUC(repo)

	edited := stored
	edited.Speaker = "00"

	rev, logs, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:     7,
		Editor: "Maria",
		Fields: edited,
	})
	require.ErrorIs(t, err, auditErr)

	// The record write already happened and is not rolled back.
	require.NotNil(t, repo.updated)
	assert.Equal(t, "00", repo.updated.Speaker)
	require.NotNil(t, rev)
	require.Len(t, logs, 1)
}

func TestEditRevision_NewPhotoDiffsAsURLChange(t *testing.T) {
	stored := baseRevision()
	stored.Evidencia01 = "https://cdn.example.com/old.jpg"
	repo := &fakeRepo{stored: &stored}

	up := &fakeUploader{urls: []string{"https://cdn.example.com/new.jpg"}}
	uc := NewEditRevision(repo, up, nil, "prueba-imagenes")
	uc.clock = time.Now

	edited := stored

	_, logs, err := uc.Execute(context.Background(), EditRevisionInput{
		ID:         7,
		Editor:     "Maria",
		Fields:     edited,
		Evidencias: [3]*evidence.File{photo(t, "nueva.png"), nil, nil},
	})
	require.NoError(t, err)

	require.Len(t, logs, 1)
	assert.Equal(t, "evidencia_01", logs[0].Field)
	assert.Equal(t, "https://cdn.example.com/old.jpg", logs[0].PreviousValue)
	assert.Equal(t, "https://cdn.example.com/new.jpg", logs[0].NewValue)
}

func TestEditRevision_GetFailureAbortsEverything(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("gone")}
	uc := newEditUC(repo)

	_, _, err := uc.Execute(context.Background(), EditRevisionInput{ID: 99, Editor: "Maria"})
	require.Error(t, err)
	assert.Equal(t, []string{"get"}, repo.calls)
}
