package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/export"

	"github.com/rs/xid"
)

type expenseManager struct {
	expenseRepository domain.ExpenseRepository
}

type ExpenseManagerDependencies struct {
	ExpenseRepository domain.ExpenseRepository
}

func NewExpenseManager(deps ExpenseManagerDependencies) domain.ExpenseService {
	return &expenseManager{
		expenseRepository: deps.ExpenseRepository,
	}
}

func (m *expenseManager) ListExpenses(ctx context.Context, userID string, from, to *time.Time) ([]domain.Expense, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.NewValidationError("to", "must not precede from")
	}

	expenses, err := m.expenseRepository.List(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (m *expenseManager) GetExpense(ctx context.Context, userID, expenseID string) (domain.Expense, error) {
	expense, err := m.expenseRepository.Get(ctx, userID, expenseID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (m *expenseManager) CreateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	if expense.Description == "" {
		return domain.Expense{}, domain.NewValidationError("description", "must not be empty")
	}
	if expense.Amount <= 0 {
		return domain.Expense{}, domain.NewValidationError("amount", "must be positive")
	}
	if expense.Currency == "" {
		expense.Currency = "USD"
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}

	expense.ID = xid.New().String()
	now := time.Now().UTC()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := m.expenseRepository.Insert(ctx, expense); err != nil {
		return domain.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	return expense, nil
}

func (m *expenseManager) UpdateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	expense.Description = strings.TrimSpace(expense.Description)
	if expense.Description == "" {
		return domain.Expense{}, domain.NewValidationError("description", "must not be empty")
	}
	if expense.Amount <= 0 {
		return domain.Expense{}, domain.NewValidationError("amount", "must be positive")
	}

	existing, err := m.expenseRepository.Get(ctx, expense.UserID, expense.ID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = time.Now().UTC()

	if err := m.expenseRepository.Update(ctx, expense); err != nil {
		return domain.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

func (m *expenseManager) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := m.expenseRepository.Delete(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (m *expenseManager) ExportExpenses(ctx context.Context, userID string) ([]byte, error) {
	expenses, err := m.expenseRepository.List(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	workbook, err := export.ExpensesWorkbook(expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to build expense workbook: %w", err)
	}

	return workbook, nil
}
