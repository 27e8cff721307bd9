package domain

import (
	"context"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type InvoiceLineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
}

type Invoice struct {
	ID             string            `bson:"id" json:"id"`
	UserID         string            `bson:"user_id" json:"user_id"`
	ClientID       string            `bson:"client_id" json:"client_id"`
	ProjectID      *string           `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Number         string            `bson:"number" json:"number"`
	LineItems      []InvoiceLineItem `bson:"line_items" json:"line_items"`
	Currency       string            `bson:"currency" json:"currency"`
	TaxRatePercent float64           `bson:"tax_rate_percent" json:"tax_rate_percent"`
	Status         InvoiceStatus     `bson:"status" json:"status"`
	IssueDate      time.Time         `bson:"issue_date" json:"issue_date"`
	DueDate        time.Time         `bson:"due_date" json:"due_date"`
	PaidAt         *time.Time        `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	PaymentLinkURL string            `bson:"payment_link_url,omitempty" json:"payment_link_url,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updated_at"`
}

// Subtotal is the sum of line items before tax.
func (i Invoice) Subtotal() float64 {
	var sum float64
	for _, item := range i.LineItems {
		sum += item.Quantity * item.UnitPrice
	}
	return sum
}

func (i Invoice) TaxAmount() float64 {
	return i.Subtotal() * i.TaxRatePercent / 100
}

func (i Invoice) Total() float64 {
	return i.Subtotal() + i.TaxAmount()
}

// SendInvoiceResult is the two-phase outcome of sending an invoice: marking
// it sent is the primary result; the email is best-effort and its failure
// never fails the primary operation.
type SendInvoiceResult struct {
	Invoice    Invoice `json:"invoice"`
	EmailSent  bool    `json:"email_sent"`
	EmailError string  `json:"email_error,omitempty"`
}

type InvoiceService interface {
	ListInvoices(ctx context.Context, userID string, status *InvoiceStatus) ([]Invoice, error)
	GetInvoice(ctx context.Context, userID, invoiceID string) (Invoice, error)
	CreateInvoice(ctx context.Context, invoice Invoice) (Invoice, error)
	UpdateInvoice(ctx context.Context, invoice Invoice) (Invoice, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error
	SendInvoice(ctx context.Context, userID, invoiceID string) (SendInvoiceResult, error)
	MarkPaid(ctx context.Context, userID, invoiceID string) (Invoice, error)
	CreatePaymentLink(ctx context.Context, userID, invoiceID string) (Invoice, error)
	ExportInvoices(ctx context.Context, userID string) ([]byte, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type InvoiceRepository interface {
	Insert(ctx context.Context, invoice Invoice) error
	Get(ctx context.Context, userID, invoiceID string) (Invoice, error)
	List(ctx context.Context, userID string, status *InvoiceStatus) ([]Invoice, error)
	Update(ctx context.Context, invoice Invoice) error
	Delete(ctx context.Context, userID, invoiceID string) error
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
