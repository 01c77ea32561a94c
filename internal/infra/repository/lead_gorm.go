package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/httperr"
	"github.com/tivrox/agency-api/internal/models"
)

type LeadGormRepository struct {
	db *gorm.DB
}

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

// --------------------------------------------------
// Create / Get
// --------------------------------------------------

func (r *LeadGormRepository) Create(ctx context.Context, l *models.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadGormRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var l models.Lead
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&l).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("lead_not_found")
		}
		return nil, err
	}
	return &l, nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *LeadGormRepository) List(ctx context.Context, f domain.ListFilters) ([]models.Lead, error) {
	q := r.db.WithContext(ctx).Model(&models.Lead{})

	if f.Service != "" && f.Service != "all" {
		q = q.Where("service = ?", f.Service)
	}
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	leads := []models.Lead{}
	if err := q.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadGormRepository) ListAll(ctx context.Context) ([]models.Lead, error) {
	return r.List(ctx, domain.ListFilters{})
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *LeadGormRepository) UpdateStatus(ctx context.Context, l *models.Lead) error {
	// Only status (and updated_at) may change; everything else is immutable
	// after intake. updated_at is stamped on the struct too, so callers can
	// return it without a stale timestamp.
	l.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{
			"status":     l.Status,
			"updated_at": l.UpdatedAt,
		}).Error
}

func (r *LeadGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Lead{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("lead_not_found")
	}
	return nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

type groupCount struct {
	Key   string
	Count int64
}

func (r *LeadGormRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var byStatus []groupCount
	if err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}

	stats := &domain.Stats{ByService: map[string]int64{}}
	for _, g := range byStatus {
		switch domain.Status(g.Key) {
		case domain.StatusNew:
			stats.New = g.Count
		case domain.StatusContacted:
			stats.Contacted = g.Count
		case domain.StatusInProgress:
			stats.InProgress = g.Count
		case domain.StatusCompleted:
			stats.Completed = g.Count
		}
	}
	// Total is derived from the four buckets so the counts always add up.
	stats.Total = stats.New + stats.Contacted + stats.InProgress + stats.Completed

	var byService []groupCount
	if err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("service AS key, COUNT(*) AS count").
		Group("service").
		Scan(&byService).Error; err != nil {
		return nil, err
	}
	for _, g := range byService {
		if g.Key != "" {
			stats.ByService[g.Key] = g.Count
		}
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*LeadGormRepository)(nil)
