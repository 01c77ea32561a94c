package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/validators"
)

const (
	defaultSubmitTimeout = 15 * time.Second
	defaultCooldown      = 30 * time.Second

	successMessage = "Your consultation request has been submitted successfully. We will contact you within 24 hours."
)

// ErrCooldown marks a resubmission attempt inside the debounce window. It is
// a UX guard, not a security control.
var ErrCooldown = errors.New("please wait before submitting again")

// FieldErrors mirrors the inline per-field messages the form shows before a
// submission is attempted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "form has invalid fields"
}

type BookingForm struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`

	WebsiteType string `json:"website_type,omitempty"`
	Platform    string `json:"platform,omitempty"`
	VideoType   string `json:"video_type,omitempty"`
	DesignType  string `json:"design_type,omitempty"`

	ProjectDeadline    string `json:"project_deadline,omitempty"`
	ProjectDescription string `json:"project_description"`
}

type SubmissionResult struct {
	Confirmed bool
	Message   string
}

// FormController drives the public booking form. Its one non-negotiable
// behavior: once a request leaves the controller, the submitter sees success
// no matter what came back. Failures are logged for staff, never shown.
type FormController struct {
	endpoint string
	http     *http.Client
	cooldown time.Duration

	mu         sync.Mutex
	lastSubmit time.Time
}

func NewFormController(endpoint string) *FormController {
	return &FormController{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultSubmitTimeout},
		cooldown: defaultCooldown,
	}
}

// Validate mirrors the server-side intake rules for inline display.
func (fc *FormController) Validate(form BookingForm) FieldErrors {
	errs := FieldErrors{}

	if form.FullName == "" {
		errs["full_name"] = "Full name is required."
	}
	if form.Email == "" {
		errs["email"] = "Email is required."
	} else if !validators.IsValidEmail(form.Email) {
		errs["email"] = "Email address is not valid."
	}
	if form.Phone == "" {
		errs["phone"] = "Phone is required."
	}
	if form.Service == "" {
		errs["service"] = "Please choose a service."
	} else if !domain.IsValidService(form.Service) {
		errs["service"] = "Please choose a service."
	}
	if form.ProjectDescription == "" {
		errs["project_description"] = "Project description is required."
	}

	return errs
}

// Submit posts the form. Validation and cooldown stop the request before it
// is sent; after that the result is always a success confirmation, even when
// the server rejected the submission or never answered.
func (fc *FormController) Submit(ctx context.Context, form BookingForm) (*SubmissionResult, error) {
	if errs := fc.Validate(form); len(errs) > 0 {
		return nil, errs
	}

	fc.mu.Lock()
	if !fc.lastSubmit.IsZero() && time.Since(fc.lastSubmit) < fc.cooldown {
		fc.mu.Unlock()
		return nil, ErrCooldown
	}
	fc.lastSubmit = time.Now()
	fc.mu.Unlock()

	fc.send(ctx, form)

	return &SubmissionResult{
		Confirmed: true,
		Message:   successMessage,
	}, nil
}

func (fc *FormController) send(ctx context.Context, form BookingForm) {
	body, err := json.Marshal(form)
	if err != nil {
		log.Printf("booking form: marshal failed: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fc.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("booking form: request build failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := fc.http.Do(req)
	if err != nil {
		log.Printf("booking form: submission failed (submitter still sees success): %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("booking form: server answered %d (submitter still sees success)", resp.StatusCode)
	}
}
