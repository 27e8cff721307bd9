package controllers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type ExpenseController struct {
	expenseService domain.ExpenseService
}

type ExpenseControllerDependencies struct {
	ExpenseService domain.ExpenseService
}

func NewExpenseController(deps ExpenseControllerDependencies) *ExpenseController {
	return &ExpenseController{
		expenseService: deps.ExpenseService,
	}
}

func (c *ExpenseController) ListExpenses(ctx fiber.Ctx) error {
	from, err := parseDateQuery(ctx, "from")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
	}

	to, err := parseDateQuery(ctx, "to")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
	}

	expenses, err := c.expenseService.ListExpenses(ctx.RequestCtx(), middlewares.UserID(ctx), from, to)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"expenses": expenses})
}

func parseDateQuery(ctx fiber.Ctx, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func (c *ExpenseController) GetExpense(ctx fiber.Ctx) error {
	expense, err := c.expenseService.GetExpense(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("expenseID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(expense)
}

func (c *ExpenseController) CreateExpense(ctx fiber.Ctx) error {
	var expense domain.Expense

	if err := ctx.Bind().Body(&expense); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	expense.UserID = middlewares.UserID(ctx)

	created, err := c.expenseService.CreateExpense(ctx.RequestCtx(), expense)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *ExpenseController) UpdateExpense(ctx fiber.Ctx) error {
	var expense domain.Expense

	if err := ctx.Bind().Body(&expense); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	expense.ID = ctx.Params("expenseID")
	expense.UserID = middlewares.UserID(ctx)

	updated, err := c.expenseService.UpdateExpense(ctx.RequestCtx(), expense)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *ExpenseController) DeleteExpense(ctx fiber.Ctx) error {
	if err := c.expenseService.DeleteExpense(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("expenseID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *ExpenseController) ExportExpenses(ctx fiber.Ctx) error {
	workbook, err := c.expenseService.ExportExpenses(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.xlsx"`)

	return ctx.Send(workbook)
}
