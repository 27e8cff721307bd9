package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// ResendSender delivers transactional mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

type ResendSenderDependencies struct {
	APIKey      string
	FromAddress string
}

func NewResendSender(deps ResendSenderDependencies) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(deps.APIKey),
		from:   deps.FromAddress,
	}
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return nil
}
