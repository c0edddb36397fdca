// Package mailer delivers outbound messages through an HTTP mail-delivery
// API. Delivery is fire-and-forget from the caller's point of view; retries
// and bounce handling belong to the delivery service behind the API.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// ErrMailDelivery is returned (wrapped) when the delivery API rejects a
// message or cannot be reached.
var ErrMailDelivery = errors.New("mail delivery failed")

// Mailer sends a single outbound message.
type Mailer interface {
	Send(ctx context.Context, job models.MailJob) error
}

// httpMailer posts messages as JSON to the configured mail-delivery API.
type httpMailer struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMailer builds a [Mailer] from cfg. Returns an error when the API
// address is empty, since a misconfigured mailer would silently drop every
// activation email.
func NewHTTPMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	if cfg.APIAddress == "" {
		return nil, errors.New("empty mail api address")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(cfg.APIAddress).
		SetTimeout(cfg.RequestTimeout)

	return &httpMailer{client: client, logger: log}, nil
}

// Send posts the message to POST /messages on the delivery API. Any non-2xx
// response is reported as [ErrMailDelivery].
func (m *httpMailer) Send(ctx context.Context, job models.MailJob) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(job).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: delivery api returned %d", ErrMailDelivery, resp.StatusCode())
	}

	return nil
}
