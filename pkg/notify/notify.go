// Package notify obtains push-delivery tokens for the daily reminder.
// The token is an opaque string minted by an external registration service;
// nothing here interprets it.
package notify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "notify").Logger()

// ErrNotificationsDisabled is returned when registration is attempted while
// the user has reminders switched off.
var ErrNotificationsDisabled = errors.New("notify: notifications are disabled in settings")

// TokenSource mints delivery tokens.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Registrar requests a delivery token from a push registration endpoint.
type Registrar struct {
	Endpoint string
	Key      string

	client *resty.Client
}

// NewRegistrar builds a Registrar for the given endpoint and application key.
func NewRegistrar(endpoint, key string) *Registrar {
	return &Registrar{
		Endpoint: endpoint,
		Key:      key,
		client:   resty.New(),
	}
}

type tokenRequest struct {
	Key string `json:"key"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token requests a fresh delivery token. The response token is returned as
// received; callers only display or forward it.
func (r *Registrar) Token(ctx context.Context) (string, error) {
	if r.Endpoint == "" {
		return "", errors.New("notify: no registration endpoint configured")
	}

	var out tokenResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(tokenRequest{Key: r.Key}).
		SetResult(&out).
		Post(r.Endpoint)
	if err != nil {
		return "", fmt.Errorf("notify: register: %w", err)
	}
	if resp.IsError() {
		log.Warn().Int("status", resp.StatusCode()).Msg("registration refused")
		return "", fmt.Errorf("notify: register: unexpected status %s", resp.Status())
	}
	if out.Token == "" {
		return "", errors.New("notify: registration returned no token")
	}
	return out.Token, nil
}
