package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tivrox/agency-api/internal/models"
)

// Service sends the pair of emails triggered by a new lead. Both sends are
// best-effort: a mail failure is logged and never reaches the submitter.
type Service struct {
	sender     EmailSender
	adminEmail string
}

func NewService(sender EmailSender, adminEmail string) *Service {
	if sender == nil {
		sender = StubSender{}
	}
	return &Service{sender: sender, adminEmail: adminEmail}
}

func (s *Service) LeadReceived(ctx context.Context, l *models.Lead) {
	if s.adminEmail != "" {
		msg := EmailMessage{
			To:      s.adminEmail,
			Subject: fmt.Sprintf("New Consultation Request - %s", l.Service),
			Body:    adminBody(l),
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			log.Printf("notify: admin email for lead %s failed: %v", l.ID, err)
		}
	}

	msg := EmailMessage{
		To:      l.Email,
		ToName:  l.FullName,
		Subject: "Consultation Request Received - TIVROX",
		Body:    confirmationBody(l),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Printf("notify: confirmation email for lead %s failed: %v", l.ID, err)
	}
}

func adminBody(l *models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New consultation request received:\n\n")
	fmt.Fprintf(&b, "Booking ID: %s\n", l.ID)
	fmt.Fprintf(&b, "Name: %s\n", l.FullName)
	fmt.Fprintf(&b, "Email: %s\n", l.Email)
	fmt.Fprintf(&b, "Phone: %s\n", l.Phone)
	fmt.Fprintf(&b, "Service: %s\n", l.Service)
	fmt.Fprintf(&b, "Project Deadline: %s\n", orNotSpecified(l.ProjectDeadline))
	fmt.Fprintf(&b, "Project Description: %s\n", l.ProjectDescription)

	if l.WebsiteType != nil {
		fmt.Fprintf(&b, "Website Type: %s\n", *l.WebsiteType)
	}
	if l.Platform != nil {
		fmt.Fprintf(&b, "Platform: %s\n", *l.Platform)
	}
	if l.VideoType != nil {
		fmt.Fprintf(&b, "Video Type: %s\n", *l.VideoType)
	}
	if l.DesignType != nil {
		fmt.Fprintf(&b, "Design Type: %s\n", *l.DesignType)
	}

	fmt.Fprintf(&b, "\nSubmitted at: %s\n", l.CreatedAt.Format(time.RFC3339))
	return b.String()
}

func confirmationBody(l *models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", l.FullName)
	fmt.Fprintf(&b, "Thank you for submitting your consultation request for %s.\n\n", l.Service)
	b.WriteString("We have received your request and our team will review it shortly. You can expect to hear back from us within 24 hours.\n\n")
	b.WriteString("Your Booking Details:\n")
	fmt.Fprintf(&b, "- Service: %s\n", l.Service)
	fmt.Fprintf(&b, "- Project Deadline: %s\n", orNotSpecified(l.ProjectDeadline))
	fmt.Fprintf(&b, "- Booking ID: %s\n\n", l.ID)
	b.WriteString("If you have any questions or need immediate assistance, please feel free to reach out to us.\n\n")
	b.WriteString("Best regards,\nTIVROX Team\n")
	return b.String()
}

func orNotSpecified(s *string) string {
	if s == nil || *s == "" {
		return "Not specified"
	}
	return *s
}
