package managers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

func newInvoiceManagerForTest() (domain.InvoiceService, *fakeInvoiceRepository, *fakeClientRepository, *fakeEmailSender, *fakePaymentLinkIssuer) {
	invoiceRepo := newFakeInvoiceRepository()
	clientRepo := newFakeClientRepository()
	emailSender := &fakeEmailSender{}
	paymentLinks := &fakePaymentLinkIssuer{url: "https://pay.example.com/cs_123"}

	service := NewInvoiceManager(InvoiceManagerDependencies{
		InvoiceRepository: invoiceRepo,
		ClientRepository:  clientRepo,
		EmailSender:       emailSender,
		PaymentLinks:      paymentLinks,
	})

	return service, invoiceRepo, clientRepo, emailSender, paymentLinks
}

func seedClient(t *testing.T, clientRepo *fakeClientRepository, email string) domain.Client {
	t.Helper()

	client := domain.Client{
		ID:     "client-1",
		UserID: testUserID,
		Name:   "Acme Corp",
		Email:  email,
		Status: domain.ClientStatusActive,
	}
	require.NoError(t, clientRepo.Insert(context.Background(), client))

	return client
}

func draftInvoice(clientID string) domain.Invoice {
	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return domain.Invoice{
		UserID:   testUserID,
		ClientID: clientID,
		LineItems: []domain.InvoiceLineItem{
			{Description: "Design", Quantity: 10, UnitPrice: 120},
			{Description: "Hosting", Quantity: 1, UnitPrice: 50},
		},
		TaxRatePercent: 10,
		IssueDate:      issue,
		DueDate:        issue.AddDate(0, 0, 30),
	}
}

func TestInvoiceTotals(t *testing.T) {
	invoice := draftInvoice("client-1")

	assert.InDelta(t, 1250.0, invoice.Subtotal(), 1e-9)
	assert.InDelta(t, 125.0, invoice.TaxAmount(), 1e-9)
	assert.InDelta(t, 1375.0, invoice.Total(), 1e-9)
}

func TestCreateInvoice(t *testing.T) {
	t.Run("assigns number and draft status", func(t *testing.T) {
		service, _, clientRepo, _, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")

		created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
		require.NoError(t, err)

		assert.Equal(t, domain.InvoiceStatusDraft, created.Status)
		assert.Regexp(t, `^INV-2026-[0-9A-Z]{6}$`, created.Number)
		assert.Equal(t, "USD", created.Currency)
	})

	t.Run("keeps explicit number", func(t *testing.T) {
		service, _, clientRepo, _, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")

		invoice := draftInvoice(client.ID)
		invoice.Number = "CUSTOM-7"

		created, err := service.CreateInvoice(context.Background(), invoice)
		require.NoError(t, err)
		assert.Equal(t, "CUSTOM-7", created.Number)
	})

	t.Run("validation", func(t *testing.T) {
		service, _, clientRepo, _, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")

		tests := []struct {
			name   string
			mutate func(*domain.Invoice)
		}{
			{name: "no line items", mutate: func(i *domain.Invoice) { i.LineItems = nil }},
			{name: "zero quantity", mutate: func(i *domain.Invoice) { i.LineItems[0].Quantity = 0 }},
			{name: "negative price", mutate: func(i *domain.Invoice) { i.LineItems[0].UnitPrice = -1 }},
			{name: "due before issue", mutate: func(i *domain.Invoice) { i.DueDate = i.IssueDate.AddDate(0, 0, -1) }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				invoice := draftInvoice(client.ID)
				tt.mutate(&invoice)

				_, err := service.CreateInvoice(context.Background(), invoice)
				assert.True(t, domain.IsValidation(err))
			})
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		service, _, _, _, _ := newInvoiceManagerForTest()

		_, err := service.CreateInvoice(context.Background(), draftInvoice("missing"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateInvoice(t *testing.T) {
	service, invoiceRepo, clientRepo, _, _ := newInvoiceManagerForTest()
	client := seedClient(t, clientRepo, "billing@acme.test")

	created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
	require.NoError(t, err)

	t.Run("paid invoices are immutable", func(t *testing.T) {
		paid := created
		paid.Status = domain.InvoiceStatusPaid
		require.NoError(t, invoiceRepo.Update(context.Background(), paid))

		_, err := service.UpdateInvoice(context.Background(), paid)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})
}

func TestSendInvoice(t *testing.T) {
	t.Run("marks sent and emails the client", func(t *testing.T) {
		service, _, clientRepo, emailSender, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")

		created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
		require.NoError(t, err)

		result, err := service.SendInvoice(context.Background(), testUserID, created.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.InvoiceStatusSent, result.Invoice.Status)
		assert.True(t, result.EmailSent)
		assert.Empty(t, result.EmailError)
		assert.Equal(t, []string{"billing@acme.test"}, emailSender.sent)
		assert.Contains(t, emailSender.lastHTML, created.Number)
	})

	t.Run("email failure does not roll back the status", func(t *testing.T) {
		service, invoiceRepo, clientRepo, emailSender, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")
		emailSender.sendErr = errors.New("smtp is on fire")

		created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
		require.NoError(t, err)

		result, err := service.SendInvoice(context.Background(), testUserID, created.ID)
		require.NoError(t, err)

		assert.False(t, result.EmailSent)
		assert.Contains(t, result.EmailError, "smtp is on fire")

		stored, err := invoiceRepo.Get(context.Background(), testUserID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusSent, stored.Status)
	})

	t.Run("client without email", func(t *testing.T) {
		service, _, clientRepo, _, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "")

		created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
		require.NoError(t, err)

		_, err = service.SendInvoice(context.Background(), testUserID, created.ID)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("paid invoice cannot be re-sent", func(t *testing.T) {
		service, _, clientRepo, _, _ := newInvoiceManagerForTest()
		client := seedClient(t, clientRepo, "billing@acme.test")

		created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
		require.NoError(t, err)

		_, err = service.MarkPaid(context.Background(), testUserID, created.ID)
		require.NoError(t, err)

		_, err = service.SendInvoice(context.Background(), testUserID, created.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})
}

func TestMarkPaid(t *testing.T) {
	service, _, clientRepo, _, _ := newInvoiceManagerForTest()
	client := seedClient(t, clientRepo, "billing@acme.test")

	created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
	require.NoError(t, err)

	paid, err := service.MarkPaid(context.Background(), testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
}

func TestCreatePaymentLink(t *testing.T) {
	service, invoiceRepo, clientRepo, _, _ := newInvoiceManagerForTest()
	client := seedClient(t, clientRepo, "billing@acme.test")

	created, err := service.CreateInvoice(context.Background(), draftInvoice(client.ID))
	require.NoError(t, err)

	withLink, err := service.CreatePaymentLink(context.Background(), testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", withLink.PaymentLinkURL)

	stored, err := invoiceRepo.Get(context.Background(), testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, withLink.PaymentLinkURL, stored.PaymentLinkURL)
}

func TestMarkOverdue(t *testing.T) {
	service, invoiceRepo, clientRepo, _, _ := newInvoiceManagerForTest()
	client := seedClient(t, clientRepo, "billing@acme.test")

	overdue := draftInvoice(client.ID)
	created, err := service.CreateInvoice(context.Background(), overdue)
	require.NoError(t, err)

	_, err = service.SendInvoice(context.Background(), testUserID, created.ID)
	require.NoError(t, err)

	flipped, err := service.MarkOverdue(context.Background(), created.DueDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), flipped)

	stored, err := invoiceRepo.Get(context.Background(), testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusOverdue, stored.Status)
}
