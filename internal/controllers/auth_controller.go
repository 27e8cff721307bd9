package controllers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type AuthController struct {
	authService domain.AuthService
}

type AuthControllerDependencies struct {
	AuthService domain.AuthService
}

func NewAuthController(deps AuthControllerDependencies) *AuthController {
	return &AuthController{
		authService: deps.AuthService,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (c *AuthController) Register(ctx fiber.Ctx) error {
	var req registerRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.authService.Register(ctx.RequestCtx(), domain.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return mapDomainError(err)
	}

	log.Info().Str("user_id", result.User.ID).Msg("User registered")

	return ctx.Status(fiber.StatusCreated).JSON(result)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *AuthController) Login(ctx fiber.Ctx) error {
	var req loginRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := c.authService.Login(ctx.RequestCtx(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(result)
}

func (c *AuthController) Me(ctx fiber.Ctx) error {
	user, err := c.authService.GetUser(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(user)
}
