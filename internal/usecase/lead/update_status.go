package lead

import (
	"context"

	"github.com/tivrox/agency-api/internal/audit"
	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor string,
	leadID string,
	newStatus string,
) (*models.Lead, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	l, err := uc.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	previous := l.Status
	l.Status = string(status)

	if err := uc.repo.UpdateStatus(ctx, l); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "lead_status_updated",
		Entity:   "lead",
		EntityID: &l.ID,
		Metadata: map[string]string{"from": previous, "to": l.Status},
	})

	return l, nil
}
