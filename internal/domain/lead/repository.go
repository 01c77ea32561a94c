package lead

import (
	"context"

	"github.com/tivrox/agency-api/internal/models"
)

// ListFilters narrows an admin listing. Empty or "all" means unfiltered.
type ListFilters struct {
	Service string
	Status  string
}

type Stats struct {
	Total      int64            `json:"total"`
	New        int64            `json:"new"`
	Contacted  int64            `json:"contacted"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	ByService  map[string]int64 `json:"by_service"`
}

type Repository interface {
	Create(ctx context.Context, l *models.Lead) error

	GetByID(ctx context.Context, id string) (*models.Lead, error)

	// List returns leads most-recent-first. Filters combine with AND.
	List(ctx context.Context, f ListFilters) ([]models.Lead, error)

	// ListAll returns every lead, most-recent-first, for export.
	ListAll(ctx context.Context) ([]models.Lead, error)

	UpdateStatus(ctx context.Context, l *models.Lead) error

	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context) (*Stats, error)
}
