package controllers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type InvoiceController struct {
	invoiceService domain.InvoiceService
}

type InvoiceControllerDependencies struct {
	InvoiceService domain.InvoiceService
}

func NewInvoiceController(deps InvoiceControllerDependencies) *InvoiceController {
	return &InvoiceController{
		invoiceService: deps.InvoiceService,
	}
}

func (c *InvoiceController) ListInvoices(ctx fiber.Ctx) error {
	var status *domain.InvoiceStatus
	if raw := ctx.Query("status"); raw != "" {
		s := domain.InvoiceStatus(raw)
		status = &s
	}

	invoices, err := c.invoiceService.ListInvoices(ctx.RequestCtx(), middlewares.UserID(ctx), status)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"invoices": invoices})
}

func (c *InvoiceController) GetInvoice(ctx fiber.Ctx) error {
	invoice, err := c.invoiceService.GetInvoice(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("invoiceID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(invoice)
}

func (c *InvoiceController) CreateInvoice(ctx fiber.Ctx) error {
	var invoice domain.Invoice

	if err := ctx.Bind().Body(&invoice); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	invoice.UserID = middlewares.UserID(ctx)

	created, err := c.invoiceService.CreateInvoice(ctx.RequestCtx(), invoice)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *InvoiceController) UpdateInvoice(ctx fiber.Ctx) error {
	var invoice domain.Invoice

	if err := ctx.Bind().Body(&invoice); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	invoice.ID = ctx.Params("invoiceID")
	invoice.UserID = middlewares.UserID(ctx)

	updated, err := c.invoiceService.UpdateInvoice(ctx.RequestCtx(), invoice)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *InvoiceController) DeleteInvoice(ctx fiber.Ctx) error {
	if err := c.invoiceService.DeleteInvoice(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("invoiceID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// SendInvoice marks the invoice sent and attempts email delivery. A delivery
// failure does not roll the status back; the response reports it instead.
func (c *InvoiceController) SendInvoice(ctx fiber.Ctx) error {
	result, err := c.invoiceService.SendInvoice(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("invoiceID"))
	if err != nil {
		return mapDomainError(err)
	}

	response := fiber.Map{
		"invoice":    result.Invoice,
		"email_sent": result.EmailSent,
	}
	if result.EmailError != "" {
		log.Warn().Str("invoice_id", result.Invoice.ID).Str("error", result.EmailError).Msg("Invoice email delivery failed")
		response["email_error"] = result.EmailError
	}

	return ctx.JSON(response)
}

func (c *InvoiceController) MarkPaid(ctx fiber.Ctx) error {
	invoice, err := c.invoiceService.MarkPaid(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("invoiceID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(invoice)
}

func (c *InvoiceController) CreatePaymentLink(ctx fiber.Ctx) error {
	invoice, err := c.invoiceService.CreatePaymentLink(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("invoiceID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(invoice)
}

func (c *InvoiceController) ExportInvoices(ctx fiber.Ctx) error {
	workbook, err := c.invoiceService.ExportInvoices(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="invoices.xlsx"`)

	return ctx.Send(workbook)
}
