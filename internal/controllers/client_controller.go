package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type ClientController struct {
	clientService domain.ClientService
}

type ClientControllerDependencies struct {
	ClientService domain.ClientService
}

func NewClientController(deps ClientControllerDependencies) *ClientController {
	return &ClientController{
		clientService: deps.ClientService,
	}
}

func (c *ClientController) ListClients(ctx fiber.Ctx) error {
	var status *domain.ClientStatus
	if raw := ctx.Query("status"); raw != "" {
		s := domain.ClientStatus(raw)
		status = &s
	}

	clients, err := c.clientService.ListClients(ctx.RequestCtx(), middlewares.UserID(ctx), status)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"clients": clients})
}

func (c *ClientController) GetClient(ctx fiber.Ctx) error {
	client, err := c.clientService.GetClient(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("clientID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(client)
}

func (c *ClientController) CreateClient(ctx fiber.Ctx) error {
	var client domain.Client

	if err := ctx.Bind().Body(&client); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	client.UserID = middlewares.UserID(ctx)

	created, err := c.clientService.CreateClient(ctx.RequestCtx(), client)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *ClientController) UpdateClient(ctx fiber.Ctx) error {
	var client domain.Client

	if err := ctx.Bind().Body(&client); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	client.ID = ctx.Params("clientID")
	client.UserID = middlewares.UserID(ctx)

	updated, err := c.clientService.UpdateClient(ctx.RequestCtx(), client)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *ClientController) DeleteClient(ctx fiber.Ctx) error {
	if err := c.clientService.DeleteClient(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("clientID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
