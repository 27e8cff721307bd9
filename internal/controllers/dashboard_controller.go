package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type DashboardController struct {
	dashboardService domain.DashboardService
}

type DashboardControllerDependencies struct {
	DashboardService domain.DashboardService
}

func NewDashboardController(deps DashboardControllerDependencies) *DashboardController {
	return &DashboardController{
		dashboardService: deps.DashboardService,
	}
}

func (c *DashboardController) GetStats(ctx fiber.Ctx) error {
	stats, err := c.dashboardService.GetStats(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(stats)
}
