package controllers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type TaskController struct {
	taskService domain.TaskService
}

type TaskControllerDependencies struct {
	TaskService domain.TaskService
}

func NewTaskController(deps TaskControllerDependencies) *TaskController {
	return &TaskController{
		taskService: deps.TaskService,
	}
}

func (c *TaskController) ListTasks(ctx fiber.Ctx) error {
	var status *domain.TaskStatus
	if raw := ctx.Query("status"); raw != "" {
		s := domain.TaskStatus(raw)
		status = &s
	}

	tasks, err := c.taskService.ListTasks(ctx.RequestCtx(), middlewares.UserID(ctx), status)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"tasks": tasks})
}

func (c *TaskController) GetTask(ctx fiber.Ctx) error {
	task, err := c.taskService.GetTask(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("taskID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(task)
}

func (c *TaskController) CreateTask(ctx fiber.Ctx) error {
	var task domain.Task

	if err := ctx.Bind().Body(&task); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	task.UserID = middlewares.UserID(ctx)

	created, err := c.taskService.CreateTask(ctx.RequestCtx(), task)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *TaskController) UpdateTask(ctx fiber.Ctx) error {
	var task domain.Task

	if err := ctx.Bind().Body(&task); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	task.ID = ctx.Params("taskID")
	task.UserID = middlewares.UserID(ctx)

	updated, err := c.taskService.UpdateTask(ctx.RequestCtx(), task)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *TaskController) CompleteTask(ctx fiber.Ctx) error {
	task, err := c.taskService.CompleteTask(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("taskID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(task)
}

func (c *TaskController) DeleteTask(ctx fiber.Ctx) error {
	if err := c.taskService.DeleteTask(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("taskID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
