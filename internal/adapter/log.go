package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [ResetNotifier] that only logs issuance.
func NewLogNotifier(logger *logger.Logger) ResetNotifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) DeliverResetToken(ctx context.Context, user models.User, resetToken models.Token) error {
	logger.FromContext(ctx).Info().
		Int64("user_id", user.ID).
		Str("token_id", resetToken.ID).
		Time("expires_at", resetToken.ExpiresAt).
		Msg("password reset token issued")
	l.logger.Debug().Int64("user_id", user.ID).Msg("no reset webhook configured")

	return nil
}

// NewResetNotifier picks the webhook notifier when a URL is configured and
// the log notifier otherwise.
func NewResetNotifier(cfg config.Notifier, logger *logger.Logger) (ResetNotifier, error) {
	if cfg.WebhookURL == "" {
		return NewLogNotifier(logger), nil
	}
	return NewWebhookNotifier(cfg, logger)
}
