package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tivrox/agency-api/internal/models"
)

type recordingSender struct {
	sent []EmailMessage
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func sampleLead() *models.Lead {
	videoType := "Promo"
	return &models.Lead{
		ID:                 "lead-1",
		FullName:           "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+1-555",
		Service:            "Video Editing",
		VideoType:          &videoType,
		ProjectDescription: "promo video",
		Status:             "New",
		CreatedAt:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLeadReceivedSendsAdminAndConfirmation(t *testing.T) {
	rec := &recordingSender{}
	svc := NewService(rec, "staff@tivrox.dev")

	svc.LeadReceived(context.Background(), sampleLead())

	require.Len(t, rec.sent, 2)

	admin := rec.sent[0]
	assert.Equal(t, "staff@tivrox.dev", admin.To)
	assert.Equal(t, "New Consultation Request - Video Editing", admin.Subject)
	assert.True(t, strings.Contains(admin.Body, "Video Type: Promo"))
	assert.True(t, strings.Contains(admin.Body, "Booking ID: lead-1"))

	confirmation := rec.sent[1]
	assert.Equal(t, "jane@x.com", confirmation.To)
	assert.True(t, strings.Contains(confirmation.Body, "Dear Jane Doe"))
	assert.True(t, strings.Contains(confirmation.Body, "Video Editing"))
}

func TestLeadReceivedSkipsAdminWhenUnconfigured(t *testing.T) {
	rec := &recordingSender{}
	svc := NewService(rec, "")

	svc.LeadReceived(context.Background(), sampleLead())

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "jane@x.com", rec.sent[0].To)
}

func TestLeadReceivedSwallowsSendErrors(t *testing.T) {
	rec := &recordingSender{err: errors.New("provider down")}
	svc := NewService(rec, "staff@tivrox.dev")

	// Must not panic or propagate; intake never depends on mail delivery.
	svc.LeadReceived(context.Background(), sampleLead())

	assert.Len(t, rec.sent, 2)
}

func TestNewSendgridSenderNilWithoutKey(t *testing.T) {
	assert.Nil(t, NewSendgridSender("", "from@tivrox.dev"))
	assert.NotNil(t, NewSendgridSender("key", "from@tivrox.dev"))
}
