package lead

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tivrox/agency-api/internal/audit"
	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/httperr"
	"github.com/tivrox/agency-api/internal/models"
	"github.com/tivrox/agency-api/internal/notify"
	"github.com/tivrox/agency-api/internal/sanitize"
	"github.com/tivrox/agency-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateLeadInput struct {
	FullName string
	Email    string
	Phone    string
	Service  string

	WebsiteType *string
	Platform    *string
	VideoType   *string
	DesignType  *string

	ProjectDeadline    *string
	ProjectDescription string

	// Honeypot. Any real content here means a bot filled the hidden field.
	CompanyURL string

	IPAddress string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLead struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Service
}

func NewCreateLead(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Service,
) *CreateLead {
	return &CreateLead{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates and persists a public submission. stored is false when
// the honeypot fired: the caller still reports success, but nothing was
// written.
func (uc *CreateLead) Execute(
	ctx context.Context,
	in CreateLeadInput,
) (l *models.Lead, stored bool, err error) {

	l = &models.Lead{
		ID: uuid.NewString(),

		FullName: sanitize.Clean(in.FullName),
		Email:    sanitize.Clean(in.Email),
		Phone:    sanitize.Clean(in.Phone),
		Service:  sanitize.Clean(in.Service),

		WebsiteType: sanitize.CleanPtr(in.WebsiteType),
		Platform:    sanitize.CleanPtr(in.Platform),
		VideoType:   sanitize.CleanPtr(in.VideoType),
		DesignType:  sanitize.CleanPtr(in.DesignType),

		ProjectDeadline:    sanitize.CleanPtr(in.ProjectDeadline),
		ProjectDescription: sanitize.Clean(in.ProjectDescription),

		Status:    string(domain.InitialStatus()),
		IPAddress: in.IPAddress,
		CreatedAt: time.Now().UTC(),
	}

	// Bots that fill the hidden field get a success response and nothing
	// else, before validation can leak which fields were rejected.
	// Intentional: never tell a bot it was caught.
	if sanitize.Clean(in.CompanyURL) != "" {
		log.Printf("intake: honeypot triggered from %s, discarding submission", in.IPAddress)
		uc.audit.Dispatch(audit.Event{
			Action:   "honeypot_discarded",
			Entity:   "lead",
			Metadata: map[string]string{"ip": in.IPAddress},
		})
		return l, false, nil
	}

	if ve := validate(l); ve.HasErrors() {
		return nil, false, ve
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &l.ID,
	})

	// Fire-and-forget; the request does not wait on the mail provider.
	go uc.notifier.LeadReceived(context.Background(), l)

	return l, true, nil
}

func validate(l *models.Lead) *httperr.ValidationError {
	ve := httperr.NewValidation()

	if l.FullName == "" {
		ve.Add("full_name", "Full name is required.")
	}
	if l.Email == "" {
		ve.Add("email", "Email is required.")
	} else if !validators.IsValidEmail(l.Email) {
		ve.Add("email", "Email address is not valid.")
	}
	if l.Phone == "" {
		ve.Add("phone", "Phone is required.")
	}
	if l.Service == "" {
		ve.Add("service", "Service is required.")
	} else if !domain.IsValidService(l.Service) {
		ve.Add("service", "Unknown service.")
	}
	if l.ProjectDescription == "" {
		ve.Add("project_description", "Project description is required.")
	}

	return ve
}
