package managers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

func newExpenseManagerForTest() (domain.ExpenseService, *fakeExpenseRepository) {
	expenseRepo := newFakeExpenseRepository()
	service := NewExpenseManager(ExpenseManagerDependencies{ExpenseRepository: expenseRepo})
	return service, expenseRepo
}

func mustCreateExpense(t *testing.T, service domain.ExpenseService, description string, amount float64, date time.Time) domain.Expense {
	t.Helper()

	expense, err := service.CreateExpense(context.Background(), domain.Expense{
		UserID:      testUserID,
		Description: description,
		Amount:      amount,
		Date:        date,
	})
	require.NoError(t, err)

	return expense
}

func TestCreateExpense(t *testing.T) {
	service, _ := newExpenseManagerForTest()

	created := mustCreateExpense(t, service, "Figma subscription", 15, time.Time{})
	assert.Equal(t, "USD", created.Currency)
	assert.False(t, created.Date.IsZero(), "zero date defaults to now")

	_, err := service.CreateExpense(context.Background(), domain.Expense{UserID: testUserID, Description: "  ", Amount: 5})
	assert.True(t, domain.IsValidation(err))

	_, err = service.CreateExpense(context.Background(), domain.Expense{UserID: testUserID, Description: "Stock photos", Amount: 0})
	assert.True(t, domain.IsValidation(err))
}

func TestListExpensesByDateRange(t *testing.T) {
	service, _ := newExpenseManagerForTest()

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	mustCreateExpense(t, service, "January hosting", 20, jan)
	inRange := mustCreateExpense(t, service, "March hosting", 20, mar)
	mustCreateExpense(t, service, "June hosting", 20, jun)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	expenses, err := service.ListExpenses(context.Background(), testUserID, &from, &to)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, inRange.ID, expenses[0].ID)

	_, err = service.ListExpenses(context.Background(), testUserID, &to, &from)
	assert.True(t, domain.IsValidation(err))
}

func TestExportExpenses(t *testing.T) {
	service, _ := newExpenseManagerForTest()

	mustCreateExpense(t, service, "Figma subscription", 15, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	workbook, err := service.ExportExpenses(context.Background(), testUserID)
	require.NoError(t, err)

	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(workbook, []byte("PK")))
}
