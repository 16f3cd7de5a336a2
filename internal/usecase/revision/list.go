package revision

import (
	"context"
	"strings"

	"github.com/puravida-ops/casitas-api/internal/cache"
	domain "github.com/puravida-ops/casitas-api/internal/domain/revision"
	"github.com/puravida-ops/casitas-api/internal/models"
)

type ListFilter struct {
	CajaFuerte string
	Query      string
}

type ListRevisions struct {
	repo  domain.Repository
	cache *cache.RevisionCache
}

func NewListRevisions(
	repo domain.Repository,
	cache *cache.RevisionCache,
) *ListRevisions {
	return &ListRevisions{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListRevisions) Execute(
	ctx context.Context,
	f ListFilter,
) ([]models.Revision, error) {

	revs, ok := uc.cache.Get(ctx)
	if !ok {
		var err error
		revs, err = uc.repo.ListRevisions(ctx)
		if err != nil {
			return nil, err
		}
		uc.cache.Set(ctx, revs)
	}

	return Filter(revs, f), nil
}

// Filter combines the safe-status filter and the free-text search
// with AND. The casita match is exact (case-insensitive); reviewer
// and safe-status are substring matches. Empty query keeps every
// record passing the safe-status filter.
func Filter(revs []models.Revision, f ListFilter) []models.Revision {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Revision, 0, len(revs))
	for _, r := range revs {
		if f.CajaFuerte != "" && r.CajaFuerte != f.CajaFuerte {
			continue
		}
		if q != "" {
			match := strings.ToLower(r.Casita) == q ||
				strings.Contains(strings.ToLower(r.QuienRevisa), q) ||
				strings.Contains(strings.ToLower(r.CajaFuerte), q)
			if !match {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
