package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/export"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

type invoiceManager struct {
	invoiceRepository domain.InvoiceRepository
	clientRepository  domain.ClientRepository
	emailSender       domain.EmailSender
	paymentLinks      domain.PaymentLinkIssuer
}

type InvoiceManagerDependencies struct {
	InvoiceRepository domain.InvoiceRepository
	ClientRepository  domain.ClientRepository
	EmailSender       domain.EmailSender
	PaymentLinks      domain.PaymentLinkIssuer
}

func NewInvoiceManager(deps InvoiceManagerDependencies) domain.InvoiceService {
	return &invoiceManager{
		invoiceRepository: deps.InvoiceRepository,
		clientRepository:  deps.ClientRepository,
		emailSender:       deps.EmailSender,
		paymentLinks:      deps.PaymentLinks,
	}
}

func (m *invoiceManager) ListInvoices(ctx context.Context, userID string, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	invoices, err := m.invoiceRepository.List(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (m *invoiceManager) GetInvoice(ctx context.Context, userID, invoiceID string) (domain.Invoice, error) {
	invoice, err := m.invoiceRepository.Get(ctx, userID, invoiceID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

func (m *invoiceManager) CreateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if len(invoice.LineItems) == 0 {
		return domain.Invoice{}, domain.NewValidationError("line_items", "must not be empty")
	}
	for _, item := range invoice.LineItems {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return domain.Invoice{}, domain.NewValidationError("line_items", "quantity must be positive and unit price non-negative")
		}
	}
	if invoice.DueDate.Before(invoice.IssueDate) {
		return domain.Invoice{}, domain.NewValidationError("due_date", "must not precede issue date")
	}
	if invoice.Currency == "" {
		invoice.Currency = "USD"
	}

	if _, err := m.clientRepository.Get(ctx, invoice.UserID, invoice.ClientID); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to resolve client: %w", err)
	}

	invoice.ID = xid.New().String()
	if strings.TrimSpace(invoice.Number) == "" {
		invoice.Number = fmt.Sprintf("INV-%d-%s", invoice.IssueDate.Year(), strings.ToUpper(invoice.ID[len(invoice.ID)-6:]))
	}
	invoice.Status = domain.InvoiceStatusDraft
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if err := m.invoiceRepository.Insert(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to insert invoice: %w", err)
	}

	return invoice, nil
}

func (m *invoiceManager) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	existing, err := m.invoiceRepository.Get(ctx, invoice.UserID, invoice.ID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if existing.Status == domain.InvoiceStatusPaid {
		return domain.Invoice{}, fmt.Errorf("%w: paid invoices cannot be edited", domain.ErrInvalidOperation)
	}

	invoice.Status = existing.Status
	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdatedAt = time.Now().UTC()

	if err := m.invoiceRepository.Update(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to update invoice: %w", err)
	}

	return invoice, nil
}

func (m *invoiceManager) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	if err := m.invoiceRepository.Delete(ctx, userID, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// SendInvoice marks the invoice sent, then emails the client. The email is
// best-effort: its failure is reported in the result, never as an error of
// the primary operation.
func (m *invoiceManager) SendInvoice(ctx context.Context, userID, invoiceID string) (domain.SendInvoiceResult, error) {
	invoice, err := m.invoiceRepository.Get(ctx, userID, invoiceID)
	if err != nil {
		return domain.SendInvoiceResult{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice.Status != domain.InvoiceStatusDraft && invoice.Status != domain.InvoiceStatusSent {
		return domain.SendInvoiceResult{}, fmt.Errorf("%w: invoice is %s", domain.ErrInvalidOperation, invoice.Status)
	}

	client, err := m.clientRepository.Get(ctx, userID, invoice.ClientID)
	if err != nil {
		return domain.SendInvoiceResult{}, fmt.Errorf("failed to resolve client: %w", err)
	}
	if client.Email == "" {
		return domain.SendInvoiceResult{}, domain.NewValidationError("client.email", "client has no email address")
	}

	invoice.Status = domain.InvoiceStatusSent
	invoice.UpdatedAt = time.Now().UTC()
	if err := m.invoiceRepository.Update(ctx, invoice); err != nil {
		return domain.SendInvoiceResult{}, fmt.Errorf("failed to mark invoice sent: %w", err)
	}

	result := domain.SendInvoiceResult{Invoice: invoice, EmailSent: true}

	subject := fmt.Sprintf("Invoice %s", invoice.Number)
	if err := m.emailSender.Send(ctx, client.Email, subject, invoiceEmailHTML(invoice, client)); err != nil {
		log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("Failed to send invoice email")
		result.EmailSent = false
		result.EmailError = err.Error()
	}

	return result, nil
}

func invoiceEmailHTML(invoice domain.Invoice, client domain.Client) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Hi %s,</p>", client.Name)
	fmt.Fprintf(&b, "<p>Invoice <strong>%s</strong> for %.2f %s is due on %s.</p>",
		invoice.Number, invoice.Total(), invoice.Currency, invoice.DueDate.Format("Jan 2, 2006"))
	if invoice.PaymentLinkURL != "" {
		fmt.Fprintf(&b, `<p><a href="%s">Pay online</a></p>`, invoice.PaymentLinkURL)
	}

	return b.String()
}

func (m *invoiceManager) MarkPaid(ctx context.Context, userID, invoiceID string) (domain.Invoice, error) {
	invoice, err := m.invoiceRepository.Get(ctx, userID, invoiceID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice.Status == domain.InvoiceStatusCancelled {
		return domain.Invoice{}, fmt.Errorf("%w: invoice is cancelled", domain.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	invoice.Status = domain.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.UpdatedAt = now

	if err := m.invoiceRepository.Update(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	return invoice, nil
}

func (m *invoiceManager) CreatePaymentLink(ctx context.Context, userID, invoiceID string) (domain.Invoice, error) {
	invoice, err := m.invoiceRepository.Get(ctx, userID, invoiceID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice.Status == domain.InvoiceStatusPaid || invoice.Status == domain.InvoiceStatusCancelled {
		return domain.Invoice{}, fmt.Errorf("%w: invoice is %s", domain.ErrInvalidOperation, invoice.Status)
	}

	linkURL, err := m.paymentLinks.CreatePaymentLink(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to create payment link: %w", err)
	}

	invoice.PaymentLinkURL = linkURL
	invoice.UpdatedAt = time.Now().UTC()

	if err := m.invoiceRepository.Update(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("failed to store payment link: %w", err)
	}

	return invoice, nil
}

func (m *invoiceManager) ExportInvoices(ctx context.Context, userID string) ([]byte, error) {
	invoices, err := m.invoiceRepository.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	workbook, err := export.InvoicesWorkbook(invoices)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice workbook: %w", err)
	}

	return workbook, nil
}

// MarkOverdue flips every sent invoice whose due date has passed. Run by the
// scheduler once a day.
func (m *invoiceManager) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	flipped, err := m.invoiceRepository.MarkOverdueBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue invoices: %w", err)
	}
	return flipped, nil
}
