// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	// SignatureHeader carries the hex HMAC-SHA256 of the request body.
	SignatureHeader = "X-Signature"

	webhookRetryCount = 2
	webhookRetryWait  = 100 * time.Millisecond
)

// resetWebhookPayload is the JSON body POSTed for every issued reset token.
type resetWebhookPayload struct {
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	ResetToken string    `json:"reset_token"`
	TokenID    string    `json:"token_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type webhookNotifier struct {
	client *utils.HTTPClient

	webhookURL string
	secret     string

	logger *logger.Logger
}

// NewWebhookNotifier constructs a [ResetNotifier] that POSTs reset tokens to
// cfg.WebhookURL. When cfg.WebhookSecret is set every request carries a
// [SignatureHeader].
func NewWebhookNotifier(cfg config.Notifier, logger *logger.Logger) (ResetNotifier, error) {
	webhookURL, err := normalizeWebhookURL(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.Timeout).
		SetRetryCount(webhookRetryCount).
		SetRetryWaitTime(webhookRetryWait).
		AddRetryCondition(isRetryable).
		SetHeader("Content-Type", "application/json")

	return &webhookNotifier{
		client:     client,
		webhookURL: webhookURL,
		secret:     cfg.WebhookSecret,
		logger:     logger,
	}, nil
}

func normalizeWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return u.String(), nil
}

// DeliverResetToken implements [ResetNotifier].
func (w *webhookNotifier) DeliverResetToken(ctx context.Context, user models.User, resetToken models.Token) error {
	body, err := json.Marshal(resetWebhookPayload{
		UserID:     user.ID,
		Email:      user.Email,
		ResetToken: resetToken.SignedString,
		TokenID:    resetToken.ID,
		ExpiresAt:  resetToken.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal reset webhook payload: %w", err)
	}

	request := w.client.R().
		SetContext(ctx).
		SetBody(body)
	if w.secret != "" {
		request.SetHeader(SignatureHeader, utils.HashString(string(body), w.secret))
	}

	resp, err := request.Post(w.webhookURL)
	if err != nil {
		return fmt.Errorf("reset webhook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	w.logger.Info().
		Int64("user_id", user.ID).
		Str("token_id", resetToken.ID).
		Int("status", resp.StatusCode()).
		Msg("reset token delivered to webhook")

	return nil
}
