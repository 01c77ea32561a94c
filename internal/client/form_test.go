package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() BookingForm {
	return BookingForm{
		FullName:           "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+1-555",
		Service:            "Video Editing",
		ProjectDescription: "promo video",
	}
}

func TestSubmitReportsSuccessOnServerSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Jane Doe", payload["full_name"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	fc := NewFormController(srv.URL)
	res, err := fc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.NotEmpty(t, res.Message)
}

// The server failing must not leak to the submitter. This is intentional
// product behavior, not something to "fix".
func TestSubmitReportsSuccessOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fc := NewFormController(srv.URL)
	res, err := fc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
}

func TestSubmitReportsSuccessWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	fc := NewFormController(srv.URL)
	res, err := fc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
}

func TestSubmitValidatesBeforeSending(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	fc := NewFormController(srv.URL)
	_, err := fc.Submit(context.Background(), BookingForm{Email: "bad"})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "full_name")
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "service")
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestSubmitCooldownBlocksResubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	fc := NewFormController(srv.URL)

	_, err := fc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	_, err = fc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrCooldown)
}

func TestSubmitCooldownExpires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	fc := NewFormController(srv.URL)
	fc.cooldown = 10 * time.Millisecond

	_, err := fc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = fc.Submit(context.Background(), validForm())
	assert.NoError(t, err)
}
