package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	domain "github.com/tivrox/agency-api/internal/domain/lead"
	"github.com/tivrox/agency-api/internal/models"
)

// ErrSessionExpired is returned when any admin call answers 401; the stored
// credential is cleared first, so the caller can redirect to login.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Credential is the client-held session token plus the display name shown in
// the dashboard header.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// APIError surfaces an admin endpoint failure for UI notification.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// ======================================================
// CLIENT
// ======================================================

type AdminClient struct {
	baseURL string
	http    *http.Client

	mu   sync.Mutex
	cred *Credential
}

func NewAdminClient(baseURL string) *AdminClient {
	return &AdminClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultSubmitTimeout},
	}
}

// Credential returns the current session credential, or nil when logged out.
func (a *AdminClient) Credential() *Credential {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cred
}

func (a *AdminClient) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cred = nil
}

// ======================================================
// LOGIN
// ======================================================

func (a *AdminClient) Login(ctx context.Context, username, password string) (*Credential, error) {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/admin/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	var cred Credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.cred = &cred
	a.mu.Unlock()

	return &cred, nil
}

// ======================================================
// TRIAGE CALLS
// ======================================================

func (a *AdminClient) ListBookings(ctx context.Context, service, status string) ([]models.Lead, error) {
	q := url.Values{}
	if service != "" {
		q.Set("service", service)
	}
	if status != "" {
		q.Set("status", status)
	}

	path := "/api/admin/bookings"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out struct {
		Bookings []models.Lead `json:"bookings"`
	}
	if err := a.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (a *AdminClient) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := a.doJSON(ctx, http.MethodGet, "/api/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	body := map[string]string{"status": status}
	var out models.Lead
	if err := a.doJSON(ctx, http.MethodPut, "/api/admin/bookings/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminClient) Delete(ctx context.Context, id string) error {
	return a.doJSON(ctx, http.MethodDelete, "/api/admin/bookings/"+id, nil, nil)
}

// ExportCSV downloads the full CSV export and suggests a local filename
// derived from today's date.
func (a *AdminClient) ExportCSV(ctx context.Context) ([]byte, string, error) {
	resp, err := a.do(ctx, http.MethodGet, "/api/admin/bookings/export", nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", readAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("tivrox_bookings_%s.csv", time.Now().UTC().Format("20060102"))
	return data, filename, nil
}

// ======================================================
// TRANSPORT
// ======================================================

func (a *AdminClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := a.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *AdminClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	cred := a.Credential()
	if cred == nil {
		return nil, ErrSessionExpired
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+cred.Token)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}

	// Any 401 means the session is gone; drop the credential so the UI
	// falls back to the login screen.
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		a.Logout()
		return nil, ErrSessionExpired
	}

	return resp, nil
}

func readAPIError(resp *http.Response) error {
	// Error bodies come in two shapes: httperr's {error_code,message} and
	// the auth handler's bare {error}.
	var payload struct {
		ErrorCode string `json:"error_code"`
		Err       string `json:"error"`
		Message   string `json:"message"`
	}

	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Code = payload.ErrorCode
		if apiErr.Code == "" {
			apiErr.Code = payload.Err
		}
		apiErr.Message = payload.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = "unexpected_error"
		apiErr.Message = resp.Status
	}
	return apiErr
}
