package domain

import (
	"context"
	"io"
)

// StorageGateway is the external binary-object service: upload/remove by
// opaque path, public URL issuance.
type StorageGateway interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	PublicURL(path string) string
	Remove(ctx context.Context, path string) error
}

// EmailSender delivers a single message. Used best-effort by callers that
// must not fail their primary operation on email errors.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// PaymentLinkIssuer creates a hosted payment page for an invoice total and
// returns its URL.
type PaymentLinkIssuer interface {
	CreatePaymentLink(ctx context.Context, invoice Invoice) (string, error)
}

// PDFRenderer converts rendered HTML into a PDF document via the configured
// conversion service.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
