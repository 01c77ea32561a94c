package lead

import (
	"context"

	"github.com/tivrox/agency-api/internal/audit"
	domain "github.com/tivrox/agency-api/internal/domain/lead"
)

type DeleteLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteLead {
	return &DeleteLead{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteLead) Execute(ctx context.Context, actor, leadID string) error {
	if err := uc.repo.Delete(ctx, leadID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "lead_deleted",
		Entity:   "lead",
		EntityID: &leadID,
	})

	return nil
}
