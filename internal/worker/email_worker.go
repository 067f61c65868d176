package worker

// email_worker.go
// Processes email jobs from QueueEmail: registration invitations and
// welcome/activation messages. Failed jobs are retried with backoff and
// end up in the DLQ when all attempts are exhausted.

import (
	"context"
	"encoding/json"

	"github.com/vanozi/superleuk-backend/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxEmailAttempts = 3

const (
	EmailKindInvitation = "invitation"
	EmailKindWelcome    = "welcome"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	Kind    string `json:"kind"` // invitation | welcome
	ToEmail string `json:"to_email"`
	Token   string `json:"token,omitempty"` // activation token for welcome mails
}

// EmailWorker processes email jobs from QueueEmail via the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
	rdb    *redis.Client
}

// NewEmailWorker creates an EmailWorker with the provided SMTP mailer.
func NewEmailWorker(mailer *infra.Mailer, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, rdb: rdb}
}

// Process sends the invitation or welcome mail, retrying on failure.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	sendErr := withRetry(ctx, maxEmailAttempts, func(attempt int) error {
		var err error
		switch payload.Kind {
		case EmailKindWelcome:
			err = w.mailer.SendWelcome(payload.ToEmail, payload.Token)
		default:
			err = w.mailer.SendInvitation(payload.ToEmail)
		}
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("to", payload.ToEmail).
				Msg("email_worker: send attempt failed, retrying")
		}
		return err
	})

	if sendErr != nil {
		log.Error().Err(sendErr).Str("to", payload.ToEmail).Msg("email_worker: failed to send email after retries")
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, sendErr.Error(), maxEmailAttempts)
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("kind", payload.Kind).Msg("email_worker: mail sent successfully")
}
