package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type AssistantController struct {
	assistantService domain.AssistantService
}

type AssistantControllerDependencies struct {
	AssistantService domain.AssistantService
}

func NewAssistantController(deps AssistantControllerDependencies) *AssistantController {
	return &AssistantController{
		assistantService: deps.AssistantService,
	}
}

func (c *AssistantController) ListConversations(ctx fiber.Ctx) error {
	conversations, err := c.assistantService.ListConversations(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"conversations": conversations})
}

func (c *AssistantController) GetConversation(ctx fiber.Ctx) error {
	conversation, err := c.assistantService.GetConversation(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("conversationID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(conversation)
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

func (c *AssistantController) SendMessage(ctx fiber.Ctx) error {
	var req sendMessageRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.assistantService.SendMessage(ctx.RequestCtx(), domain.SendMessageParams{
		UserID:         middlewares.UserID(ctx),
		ConversationID: req.ConversationID,
		Content:        req.Content,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(result)
}

func (c *AssistantController) DeleteConversation(ctx fiber.Ctx) error {
	if err := c.assistantService.DeleteConversation(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("conversationID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
