package service

import (
	"context"
	"sort"
	"time"

	"walltea/models"
	"walltea/store"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// BudgetRowKind 预算状态行的来源
type BudgetRowKind string

const (
	// BudgetPersisted 来自预算表
	BudgetPersisted BudgetRowKind = "persisted"
	// BudgetSynthesized 该类别当月有支出但没有预算，仅在报表中合成，不落库
	BudgetSynthesized BudgetRowKind = "synthesized"
)

// BudgetStatusRow 某月单个类别的预算与支出
type BudgetStatusRow struct {
	ID           *uint           `json:"id"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Spent        decimal.Decimal `json:"spent"`
	Kind         BudgetRowKind   `json:"kind"`
}

// MonthlyIncome 单月收入
type MonthlyIncome struct {
	Month    string          `json:"month"` // YYYY-MM
	Salary   decimal.Decimal `json:"salary"`
	SideGigs decimal.Decimal `json:"side_gigs"`
}

// MonthlyFinancial 单月收支
type MonthlyFinancial struct {
	Month       string          `json:"month"`
	MonthNumber int             `json:"month_number"`
	Year        int             `json:"year"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
}

// Profile 用户概要
type Profile struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel 月份简称，month 取 1-12
func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthLabels[month-1]
}

// Reporter 只读汇总
type Reporter struct {
	store *store.Store
}

func NewReporter(db *gorm.DB) *Reporter {
	return &Reporter{store: store.New(db)}
}

// ExpensesByCategory 全部历史按类别汇总支出
func (r *Reporter) ExpensesByCategory(ctx context.Context, userID uint) ([]store.CategoryTotal, error) {
	rows, err := r.store.WithContext(ctx).Ledger.SpentByCategory(userID)
	if err != nil {
		return nil, wrap("expenses by category", err)
	}
	return rows, nil
}

// BudgetStatus 某月预算状态：已有预算的类别在前，其后是有支出但无预算的合成行
// month/year 为 0 时取当前月份
func (r *Reporter) BudgetStatus(ctx context.Context, userID uint, month, year int) ([]BudgetStatusRow, error) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, invalid("month", "应为 1-12")
	}

	var (
		lines  []store.BudgetLine
		spends []store.CategorySpend
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = r.store.WithContext(gctx).Budgets.ListForPeriod(userID, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		spends, err = r.store.WithContext(gctx).Ledger.SpentInPeriod(userID, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap("budget status", err)
	}

	live := make(map[uint]decimal.Decimal, len(spends))
	for _, s := range spends {
		live[s.CategoryID] = s.Spent
	}

	rows := make([]BudgetStatusRow, 0, len(lines)+len(spends))
	budgeted := make(map[uint]bool, len(lines))
	for _, l := range lines {
		id := l.ID
		budgeted[l.CategoryID] = true
		rows = append(rows, BudgetStatusRow{
			ID:           &id,
			CategoryID:   l.CategoryID,
			CategoryName: l.CategoryName,
			Budgeted:     l.Budgeted,
			Spent:        live[l.CategoryID],
			Kind:         BudgetPersisted,
		})
	}
	for _, s := range spends {
		if budgeted[s.CategoryID] {
			continue
		}
		rows = append(rows, BudgetStatusRow{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Budgeted:     decimal.Zero,
			Spent:        s.Spent,
			Kind:         BudgetSynthesized,
		})
	}
	return rows, nil
}

// MonthlyIncomes 按月份升序列出收入
func (r *Reporter) MonthlyIncomes(ctx context.Context, userID uint) ([]MonthlyIncome, error) {
	list, err := r.store.WithContext(ctx).Incomes.ListMonthly(userID)
	if err != nil {
		return nil, wrap("monthly incomes", err)
	}
	out := make([]MonthlyIncome, 0, len(list))
	for _, i := range list {
		out = append(out, MonthlyIncome{Month: i.Month, Salary: i.Salary, SideGigs: i.SideGigs})
	}
	return out, nil
}

// MonthlyFinancials 按自然月汇总收支并按时间排序
// 收入 = 收入表 + 正数流水；支出 = 负数流水绝对值
func (r *Reporter) MonthlyFinancials(ctx context.Context, userID uint) ([]MonthlyFinancial, error) {
	var (
		incomes   []models.Income
		movements []models.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = r.store.WithContext(gctx).Incomes.ListMonthly(userID)
		return err
	})
	g.Go(func() error {
		var err error
		movements, err = r.store.WithContext(gctx).Ledger.Movements(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap("monthly financials", err)
	}

	type key struct{ year, month int }
	byMonth := make(map[key]*MonthlyFinancial)
	get := func(month, year int) *MonthlyFinancial {
		k := key{year, month}
		if m, ok := byMonth[k]; ok {
			return m
		}
		m := &MonthlyFinancial{
			Month:       MonthLabel(month),
			MonthNumber: month,
			Year:        year,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
		}
		byMonth[k] = m
		return m
	}

	for _, i := range incomes {
		month, year, err := store.ParseMonthKey(i.Month)
		if err != nil {
			continue
		}
		m := get(month, year)
		m.Income = m.Income.Add(i.Total())
	}
	for _, t := range movements {
		m := get(int(t.TransactionDate.Month()), t.TransactionDate.Year())
		switch {
		case t.Amount.IsNegative():
			m.Expenses = m.Expenses.Add(t.Amount.Abs())
		case t.Amount.IsPositive():
			m.Income = m.Income.Add(t.Amount)
		}
	}

	out := make([]MonthlyFinancial, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].MonthNumber < out[j].MonthNumber
	})
	return out, nil
}

// Profile 用户资料与当前余额
func (r *Reporter) Profile(ctx context.Context, userID uint) (*Profile, error) {
	u, err := r.store.WithContext(ctx).Balances.Get(userID)
	if err != nil {
		return nil, wrap("load user", err)
	}
	return &Profile{ID: u.ID, Name: u.Name, Email: u.Email, Balance: u.Balance}, nil
}

// Transactions 用户流水，按日期倒序
func (r *Reporter) Transactions(ctx context.Context, f store.LedgerFilter) ([]store.TransactionRow, error) {
	rows, err := r.store.WithContext(ctx).Ledger.List(f)
	if err != nil {
		return nil, wrap("list transactions", err)
	}
	return rows, nil
}

// Categories 全部类别
func (r *Reporter) Categories(ctx context.Context) ([]models.Category, error) {
	list, err := r.store.WithContext(ctx).Categories.List()
	if err != nil {
		return nil, wrap("list categories", err)
	}
	return list, nil
}
