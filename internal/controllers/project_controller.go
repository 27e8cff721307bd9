package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type ProjectController struct {
	projectService domain.ProjectService
}

type ProjectControllerDependencies struct {
	ProjectService domain.ProjectService
}

func NewProjectController(deps ProjectControllerDependencies) *ProjectController {
	return &ProjectController{
		projectService: deps.ProjectService,
	}
}

func (c *ProjectController) ListProjects(ctx fiber.Ctx) error {
	var status *domain.ProjectStatus
	if raw := ctx.Query("status"); raw != "" {
		s := domain.ProjectStatus(raw)
		status = &s
	}

	projects, err := c.projectService.ListProjects(ctx.RequestCtx(), middlewares.UserID(ctx), status)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"projects": projects})
}

func (c *ProjectController) GetProject(ctx fiber.Ctx) error {
	project, err := c.projectService.GetProject(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("projectID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(project)
}

func (c *ProjectController) CreateProject(ctx fiber.Ctx) error {
	var project domain.Project

	if err := ctx.Bind().Body(&project); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	project.UserID = middlewares.UserID(ctx)

	created, err := c.projectService.CreateProject(ctx.RequestCtx(), project)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *ProjectController) UpdateProject(ctx fiber.Ctx) error {
	var project domain.Project

	if err := ctx.Bind().Body(&project); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	project.ID = ctx.Params("projectID")
	project.UserID = middlewares.UserID(ctx)

	updated, err := c.projectService.UpdateProject(ctx.RequestCtx(), project)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *ProjectController) DeleteProject(ctx fiber.Ctx) error {
	if err := c.projectService.DeleteProject(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("projectID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
