package revision

import (
	"context"
	"strings"

	"github.com/puravida-ops/casitas-api/internal/cache"
	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/models"
	"github.com/puravida-ops/casitas-api/internal/storage"
	"github.com/puravida-ops/casitas-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateRevisionInput struct {
	Revision models.Revision

	// Free-text extras folded into the Notas column.
	AccesoriosSecadoraFaltante string
	Faltantes                  string

	// Pending photos per slot; nil means the slot was left empty.
	Evidencias [3]*evidence.File
}

// ======================================================
// USE CASE
// ======================================================

type CreateRevision struct {
	repo     domain.Repository
	uploader storage.Uploader
	cache    *cache.RevisionCache
	folder   string
}

func NewCreateRevision(
	repo domain.Repository,
	uploader storage.Uploader,
	cache *cache.RevisionCache,
	folder string,
) *CreateRevision {
	return &CreateRevision{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
		folder:   folder,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRevision) Execute(
	ctx context.Context,
	in CreateRevisionInput,
) (*models.Revision, error) {

	rev := in.Revision

	// --------------------------------------------------
	// 1. Required fields (first error wins)
	// --------------------------------------------------
	hasEvidencia01 := in.Evidencias[0] != nil || rev.Evidencia01 != ""
	if err := validators.ValidateNewRevision(&rev, hasEvidencia01); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Evidence photos, slot by slot. The first failure
	// aborts the save; earlier uploads stay stranded.
	// --------------------------------------------------
	slots := [3]*string{&rev.Evidencia01, &rev.Evidencia02, &rev.Evidencia03}
	for i, f := range in.Evidencias {
		if f == nil {
			continue
		}
		url, err := evidence.Process(ctx, uc.uploader, uc.folder, *f)
		if err != nil {
			return nil, err
		}
		*slots[i] = url
	}

	// --------------------------------------------------
	// 3. Fold the optional free-text answers into Notas
	// --------------------------------------------------
	rev.Notas = composeNotas(in.AccesoriosSecadoraFaltante, in.Faltantes)

	// --------------------------------------------------
	// 4. Insert + cache invalidation
	// --------------------------------------------------
	if err := uc.repo.CreateRevision(ctx, &rev); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	return &rev, nil
}

func composeNotas(accesoriosFaltante, faltantes string) string {
	var parts []string
	if accesoriosFaltante != "" {
		parts = append(parts, "Faltante accesorios secadora: "+accesoriosFaltante)
	}
	if faltantes != "" {
		parts = append(parts, "Faltantes generales: "+faltantes)
	}
	return strings.Join(parts, "\n")
}
