package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type ShareController struct {
	shareService domain.ShareService
}

type ShareControllerDependencies struct {
	ShareService domain.ShareService
}

func NewShareController(deps ShareControllerDependencies) *ShareController {
	return &ShareController{
		shareService: deps.ShareService,
	}
}

type createShareRequest struct {
	FileID      string                  `json:"file_id"`
	AccessLevel domain.ShareAccessLevel `json:"access_level"`
	ExpiresAt   *time.Time              `json:"expires_at"`
}

func (c *ShareController) CreateShareLink(ctx fiber.Ctx) error {
	var req createShareRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.shareService.CreateShareLink(ctx.RequestCtx(), domain.CreateShareLinkParams{
		UserID:      middlewares.UserID(ctx),
		FileID:      req.FileID,
		AccessLevel: req.AccessLevel,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(result)
}

// ResolveShareLink is public; an expired token and an unknown token produce
// the same response, so a visitor cannot probe which links once existed.
func (c *ShareController) ResolveShareLink(ctx fiber.Ctx) error {
	token := ctx.Query("token")
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing token")
	}

	shared, err := c.shareService.ResolveShareLink(ctx.RequestCtx(), token)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			return mapDomainError(err)
		}
		return fiber.NewError(fiber.StatusNotFound, "This link is no longer valid")
	}

	return ctx.JSON(shared)
}
