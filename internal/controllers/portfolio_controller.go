package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type PortfolioController struct {
	portfolioService domain.PortfolioService
}

type PortfolioControllerDependencies struct {
	PortfolioService domain.PortfolioService
}

func NewPortfolioController(deps PortfolioControllerDependencies) *PortfolioController {
	return &PortfolioController{
		portfolioService: deps.PortfolioService,
	}
}

func (c *PortfolioController) ListPortfolios(ctx fiber.Ctx) error {
	portfolios, err := c.portfolioService.ListPortfolios(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"portfolios": portfolios})
}

func (c *PortfolioController) GetPortfolio(ctx fiber.Ctx) error {
	portfolio, err := c.portfolioService.GetPortfolio(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("portfolioID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(portfolio)
}

// GetPublished is public; only published portfolios resolve.
func (c *PortfolioController) GetPublished(ctx fiber.Ctx) error {
	portfolio, err := c.portfolioService.GetPublished(ctx.RequestCtx(), ctx.Params("slug"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(portfolio)
}

func (c *PortfolioController) CreatePortfolio(ctx fiber.Ctx) error {
	var portfolio domain.Portfolio

	if err := ctx.Bind().Body(&portfolio); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	portfolio.UserID = middlewares.UserID(ctx)

	created, err := c.portfolioService.CreatePortfolio(ctx.RequestCtx(), portfolio)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *PortfolioController) UpdatePortfolio(ctx fiber.Ctx) error {
	var portfolio domain.Portfolio

	if err := ctx.Bind().Body(&portfolio); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	portfolio.ID = ctx.Params("portfolioID")
	portfolio.UserID = middlewares.UserID(ctx)

	updated, err := c.portfolioService.UpdatePortfolio(ctx.RequestCtx(), portfolio)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

type publishRequest struct {
	Published bool `json:"published"`
}

func (c *PortfolioController) SetPublished(ctx fiber.Ctx) error {
	var req publishRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	portfolio, err := c.portfolioService.SetPublished(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("portfolioID"), req.Published)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(portfolio)
}

func (c *PortfolioController) DeletePortfolio(ctx fiber.Ctx) error {
	if err := c.portfolioService.DeletePortfolio(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("portfolioID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *PortfolioController) ExportPDF(ctx fiber.Ctx) error {
	document, err := c.portfolioService.ExportPDF(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("portfolioID"))
	if err != nil {
		return mapDomainError(err)
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="portfolio.pdf"`)

	return ctx.Send(document)
}
