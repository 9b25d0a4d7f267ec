package service

import (
	"context"
	"testing"

	"walltea/models"
	"walltea/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", MonthLabel(1))
	assert.Equal(t, "Fev", MonthLabel(2))
	assert.Equal(t, "Dez", MonthLabel(12))
	assert.Equal(t, "", MonthLabel(0))
	assert.Equal(t, "", MonthLabel(13))
}

func TestReporter_BudgetStatusSynthesizesUnbudgetedSpend(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "status@example.com")
	r := NewReconciler(db, nil)
	rep := NewReporter(db)
	ctx := context.Background()

	require.NoError(t, r.UpsertBudget(ctx, budget(u.ID, 1, "100", 3, 2024)))
	for _, in := range []TransactionInput{
		expense(u.ID, 1, "-30", day(2024, 3, 5)),
		expense(u.ID, 2, "-20", day(2024, 3, 6)),
		expense(u.ID, 2, "-5", day(2024, 3, 7)),
		expense(u.ID, 3, "-9", day(2024, 4, 1)),
		expense(u.ID, 4, "1000", day(2024, 3, 1)),
	} {
		_, err := r.CreateTransaction(ctx, in)
		require.NoError(t, err)
	}

	rows, err := rep.BudgetStatus(ctx, u.ID, 3, 2024)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, BudgetPersisted, rows[0].Kind)
	require.NotNil(t, rows[0].ID)
	assert.Equal(t, uint(1), rows[0].CategoryID)
	assert.Equal(t, models.CategoryFood, rows[0].CategoryName)
	assertMoney(t, "100", rows[0].Budgeted)
	assertMoney(t, "30", rows[0].Spent)

	assert.Equal(t, BudgetSynthesized, rows[1].Kind)
	assert.Nil(t, rows[1].ID)
	assert.Equal(t, uint(2), rows[1].CategoryID)
	assertMoney(t, "0", rows[1].Budgeted)
	assertMoney(t, "25", rows[1].Spent)

	// 合成行不落库
	var count int64
	require.NoError(t, db.Model(&models.Budget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	empty, err := rep.BudgetStatus(ctx, u.ID, 1, 2020)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = rep.BudgetStatus(ctx, u.ID, 13, 2024)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestReporter_ExpensesByCategory(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "exp@example.com")
	other := createUser(t, db, "exp2@example.com")
	r := NewReconciler(db, nil)
	rep := NewReporter(db)
	ctx := context.Background()

	for _, in := range []TransactionInput{
		expense(u.ID, 1, "-30", day(2024, 3, 5)),
		expense(u.ID, 1, "-12.5", day(2023, 1, 5)),
		expense(u.ID, 2, "-20", day(2024, 3, 6)),
		expense(u.ID, 2, "500", day(2024, 3, 6)),
		expense(other.ID, 1, "-99", day(2024, 3, 5)),
	} {
		_, err := r.CreateTransaction(ctx, in)
		require.NoError(t, err)
	}

	rows, err := rep.ExpensesByCategory(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := map[string]decimal.Decimal{}
	for _, row := range rows {
		got[row.Category] = row.TotalSpent
	}
	assertMoney(t, "42.5", got[models.CategoryFood])
	assertMoney(t, "20", got[models.CategoryTransport])
}

func TestReporter_MonthlyFinancials(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "fin@example.com")
	r := NewReconciler(db, nil)
	rep := NewReporter(db)
	ctx := context.Background()

	require.NoError(t, r.RecordIncome(ctx, IncomeInput{UserID: u.ID, Month: 3, Year: 2024, Salary: amount("2000"), SideGigs: amount("500")}))
	require.NoError(t, r.RecordIncome(ctx, IncomeInput{UserID: u.ID, Month: 1, Year: 2025, Salary: amount("100"), SideGigs: amount("0")}))
	for _, in := range []TransactionInput{
		expense(u.ID, 4, "1000", day(2024, 3, 1)),
		expense(u.ID, 1, "-30", day(2024, 3, 5)),
		expense(u.ID, 2, "-20", day(2024, 3, 6)),
		expense(u.ID, 3, "-5", day(2024, 4, 1)),
	} {
		_, err := r.CreateTransaction(ctx, in)
		require.NoError(t, err)
	}

	rows, err := rep.MonthlyFinancials(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Mar", rows[0].Month)
	assert.Equal(t, 3, rows[0].MonthNumber)
	assert.Equal(t, 2024, rows[0].Year)
	assertMoney(t, "3500", rows[0].Income)
	assertMoney(t, "50", rows[0].Expenses)

	assert.Equal(t, "Abr", rows[1].Month)
	assertMoney(t, "0", rows[1].Income)
	assertMoney(t, "5", rows[1].Expenses)

	assert.Equal(t, "Jan", rows[2].Month)
	assert.Equal(t, 2025, rows[2].Year)
	assertMoney(t, "100", rows[2].Income)
	assertMoney(t, "0", rows[2].Expenses)

	incomes, err := rep.MonthlyIncomes(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	assert.Equal(t, "2024-03", incomes[0].Month)
	assertMoney(t, "500", incomes[0].SideGigs)
	assert.Equal(t, "2025-01", incomes[1].Month)
}

func TestReporter_ProfileAndLists(t *testing.T) {
	db := newTestDB(t)
	u := createUser(t, db, "profile@example.com")
	r := NewReconciler(db, nil)
	rep := NewReporter(db)
	ctx := context.Background()

	_, err := r.CreateTransaction(ctx, expense(u.ID, 1, "-10", day(2024, 3, 1)))
	require.NoError(t, err)
	_, err = r.CreateTransaction(ctx, expense(u.ID, 2, "-5", day(2024, 3, 9)))
	require.NoError(t, err)

	p, err := rep.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, p.Email)
	assertMoney(t, "-15", p.Balance)

	_, err = rep.Profile(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := rep.Transactions(ctx, store.LedgerFilter{UserID: u.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.CategoryTransport, list[0].CategoryName)

	cats, err := rep.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(models.GetCategories()))
}
