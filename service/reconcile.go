package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"walltea/logging"
	"walltea/models"
	"walltea/store"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetAlert 一次预算超支
type BudgetAlert struct {
	User         *models.User
	Budget       *models.Budget
	CategoryName string
}

// Notifier 预算超支通知，在事务提交之后调用
type Notifier interface {
	BudgetExceeded(ctx context.Context, alert BudgetAlert) error
}

// TransactionInput 新增/修改流水的字段
type TransactionInput struct {
	UserID        uint
	CategoryID    uint
	Description   string
	Entity        string
	PaymentMethod string
	Date          time.Time
	Amount        *decimal.Decimal // nil 表示未提供；0 是合法金额
}

func (in *TransactionInput) validate() error {
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.UserID == 0:
		return invalid("userId", "不能为空")
	case in.CategoryID == 0:
		return invalid("categoryId", "不能为空")
	case in.Description == "":
		return invalid("description", "不能为空")
	case in.Date.IsZero():
		return invalid("transaction_date", "不能为空")
	case in.Amount == nil:
		return invalid("amount", "不能为空")
	}
	in.Amount = roundMoney(in.Amount)
	return nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

// ParseTransactionDate 解析流水日期，只保留字符串中给出的年月日，不做时区换算
// 空串返回零值，由校验报缺失
func ParseTransactionDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return store.DateOnly(t), nil
		}
	}
	return time.Time{}, invalid("transaction_date", "日期格式应为 YYYY-MM-DD")
}

// BudgetInput 预算字段
type BudgetInput struct {
	UserID     uint
	CategoryID uint
	Budgeted   *decimal.Decimal
	Month      int
	Year       int
}

func (in *BudgetInput) validate() error {
	switch {
	case in.UserID == 0:
		return invalid("userId", "不能为空")
	case in.CategoryID == 0:
		return invalid("categoryId", "不能为空")
	case in.Budgeted == nil:
		return invalid("budgetedAmount", "不能为空")
	case in.Month < 1 || in.Month > 12:
		return invalid("month", "应为 1-12")
	case in.Year < 1 || in.Year > 9999:
		return invalid("year", "无效的年份")
	}
	in.Budgeted = roundMoney(in.Budgeted)
	return nil
}

func (in *BudgetInput) bucket() store.Bucket {
	return store.Bucket{UserID: in.UserID, CategoryID: in.CategoryID, Month: in.Month, Year: in.Year}
}

// IncomeInput 月度收入
type IncomeInput struct {
	UserID   uint
	Month    int
	Year     int
	Salary   *decimal.Decimal
	SideGigs *decimal.Decimal
}

func (in *IncomeInput) validate() error {
	switch {
	case in.UserID == 0:
		return invalid("userId", "不能为空")
	case in.Month < 1 || in.Month > 12:
		return invalid("month", "应为 1-12")
	case in.Year < 1 || in.Year > 9999:
		return invalid("year", "无效的年份")
	case in.Salary == nil:
		return invalid("salary", "不能为空")
	case in.SideGigs == nil:
		return invalid("sideGigs", "不能为空")
	}
	in.Salary = roundMoney(in.Salary)
	in.SideGigs = roundMoney(in.SideGigs)
	return nil
}

// roundMoney 按金额列精度取整，返回新值，不修改调用方持有的 decimal
func roundMoney(d *decimal.Decimal) *decimal.Decimal {
	r := d.Round(store.MoneyScale)
	return &r
}

// Reconciler 记账引擎
// 每次写流水都在一个数据库事务里同时调整余额，并对受影响的 (类别, 月, 年) 桶做完整重新聚合
type Reconciler struct {
	store    *store.Store
	notifier Notifier
	log      *slog.Logger
}

// NewReconciler notifier 可为 nil
func NewReconciler(db *gorm.DB, notifier Notifier) *Reconciler {
	return &Reconciler{
		store:    store.New(db),
		notifier: notifier,
		log:      logging.Component("reconciler"),
	}
}

// AffectedBuckets 修改流水后需要重新聚合的桶
// 旧金额为支出时旧桶必须重算（流水可能移出了该桶），新金额为支出时新桶必须重算
func AffectedBuckets(oldBucket store.Bucket, oldAmount decimal.Decimal, newBucket store.Bucket, newAmount decimal.Decimal) []store.Bucket {
	var out []store.Bucket
	if oldAmount.IsNegative() {
		out = append(out, oldBucket)
	}
	if newAmount.IsNegative() && (len(out) == 0 || out[0] != newBucket) {
		out = append(out, newBucket)
	}
	return out
}

// CreateTransaction 新增流水
func (r *Reconciler) CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	txn := models.Transaction{
		UserID:          in.UserID,
		CategoryID:      in.CategoryID,
		Description:     in.Description,
		Entity:          in.Entity,
		PaymentMethod:   in.PaymentMethod,
		TransactionDate: store.DateOnly(in.Date),
		Amount:          *in.Amount,
	}

	var touched []*models.Budget
	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := r.ensureCategory(tx, in.CategoryID); err != nil {
			return err
		}
		if err := tx.Ledger.Insert(&txn); err != nil {
			return wrap("insert transaction", err)
		}
		if err := tx.Balances.Adjust(in.UserID, txn.Amount); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalid("userId", "用户不存在")
			}
			return wrap("adjust balance", err)
		}
		if txn.IsExpense() {
			row, err := r.recompute(tx, store.BucketOf(txn.UserID, txn.CategoryID, txn.TransactionDate))
			if err != nil {
				return err
			}
			touched = appendBudget(touched, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notify(ctx, touched)
	return &txn, nil
}

// UpdateTransaction 修改流水：余额按差额调整，新旧两个桶都从流水重新聚合
func (r *Reconciler) UpdateTransaction(ctx context.Context, id uint, in TransactionInput) error {
	if id == 0 {
		return invalid("id", "无效的ID")
	}
	if err := in.validate(); err != nil {
		return err
	}

	var touched []*models.Budget
	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		old, err := tx.Ledger.Get(id, in.UserID)
		if err != nil {
			return wrap("load transaction", err)
		}
		if err := r.ensureCategory(tx, in.CategoryID); err != nil {
			return err
		}

		oldAmount := old.Amount
		oldBucket := store.BucketOf(old.UserID, old.CategoryID, old.TransactionDate)

		updated := *old
		updated.CategoryID = in.CategoryID
		updated.Description = in.Description
		updated.Entity = in.Entity
		updated.PaymentMethod = in.PaymentMethod
		updated.TransactionDate = store.DateOnly(in.Date)
		updated.Amount = *in.Amount

		if err := tx.Ledger.Update(&updated); err != nil {
			return wrap("update transaction", err)
		}
		if err := tx.Balances.Adjust(in.UserID, updated.Amount.Sub(oldAmount)); err != nil {
			return wrap("adjust balance", err)
		}

		newBucket := store.BucketOf(updated.UserID, updated.CategoryID, updated.TransactionDate)
		for _, b := range AffectedBuckets(oldBucket, oldAmount, newBucket, updated.Amount) {
			row, err := r.recompute(tx, b)
			if err != nil {
				return err
			}
			touched = appendBudget(touched, row)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.notify(ctx, touched)
	return nil
}

// DeleteTransaction 删除流水并回滚其对余额和桶的影响
func (r *Reconciler) DeleteTransaction(ctx context.Context, id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrNotFound
	}

	return r.store.Transaction(ctx, func(tx *store.Store) error {
		old, err := tx.Ledger.Get(id, userID)
		if err != nil {
			return wrap("load transaction", err)
		}
		if err := tx.Ledger.Delete(id, userID); err != nil {
			return wrap("delete transaction", err)
		}
		if err := tx.Balances.Adjust(userID, old.Amount.Neg()); err != nil {
			return wrap("adjust balance", err)
		}
		if old.IsExpense() {
			if _, err := r.recompute(tx, store.BucketOf(old.UserID, old.CategoryID, old.TransactionDate)); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpsertBudget 按 (用户, 类别, 月, 年) 写入预算，spent 总是从流水现算
// 重复调用结果一致
func (r *Reconciler) UpsertBudget(ctx context.Context, in BudgetInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	b := in.bucket()

	var row *models.Budget
	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := r.ensureCategory(tx, in.CategoryID); err != nil {
			return err
		}
		spent, err := tx.Ledger.SpentInBucket(b)
		if err != nil {
			return wrap("recompute spent", err)
		}
		if err := tx.Budgets.Upsert(b, *in.Budgeted, spent); err != nil {
			return wrap("upsert budget", err)
		}
		row, err = tx.Budgets.Find(b)
		return wrap("load budget", err)
	})
	if err != nil {
		return err
	}

	r.notify(ctx, []*models.Budget{row})
	return nil
}

// UpdateBudget 按 id 修改预算，可改到另一个类别/月份；目标桶已有其他预算时拒绝
func (r *Reconciler) UpdateBudget(ctx context.Context, id uint, in BudgetInput) error {
	if id == 0 {
		return invalid("id", "无效的ID")
	}
	if err := in.validate(); err != nil {
		return err
	}
	target := in.bucket()

	var row *models.Budget
	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		var err error
		row, err = tx.Budgets.Get(id, in.UserID)
		if err != nil {
			return wrap("load budget", err)
		}
		if err := r.ensureCategory(tx, in.CategoryID); err != nil {
			return err
		}

		existing, err := tx.Budgets.Find(target)
		switch {
		case err == nil && existing.ID != row.ID:
			return invalid("categoryId", "该类别在此月份已有预算")
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return wrap("load budget", err)
		}

		spent, err := tx.Ledger.SpentInBucket(target)
		if err != nil {
			return wrap("recompute spent", err)
		}

		row.CategoryID = in.CategoryID
		row.Month = in.Month
		row.Year = in.Year
		row.Budgeted = *in.Budgeted
		row.Spent = spent
		return wrap("update budget", tx.Budgets.Update(row))
	})
	if err != nil {
		return err
	}

	r.notify(ctx, []*models.Budget{row})
	return nil
}

// DeleteBudget 删除预算，不影响流水
func (r *Reconciler) DeleteBudget(ctx context.Context, id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrNotFound
	}
	return wrap("delete budget", r.store.WithContext(ctx).Budgets.Delete(id, userID))
}

// RecordIncome 累加某月收入并把本次金额计入余额
func (r *Reconciler) RecordIncome(ctx context.Context, in IncomeInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	return r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Incomes.AddMonth(in.UserID, store.MonthKey(in.Month, in.Year), *in.Salary, *in.SideGigs); err != nil {
			return wrap("record income", err)
		}
		return wrap("adjust balance", tx.Balances.Adjust(in.UserID, in.Salary.Add(*in.SideGigs)))
	})
}

func (r *Reconciler) ensureCategory(tx *store.Store, id uint) error {
	ok, err := tx.Categories.Exists(id)
	if err != nil {
		return wrap("load category", err)
	}
	if !ok {
		return invalid("categoryId", "类别不存在")
	}
	return nil
}

// recompute 对单个桶做完整聚合并写回已有预算行；桶没有预算行时返回 nil
func (r *Reconciler) recompute(tx *store.Store, b store.Bucket) (*models.Budget, error) {
	spent, err := tx.Ledger.SpentInBucket(b)
	if err != nil {
		return nil, wrap("recompute spent", err)
	}
	row, err := tx.Budgets.SetSpent(b, spent)
	if err != nil {
		return nil, wrap("update budget spent", err)
	}
	r.log.Debug("bucket recomputed", "bucket", b.String(), "spent", spent.String(), "has_budget", row != nil)
	return row, nil
}

// notify 通知失败只记录日志，不影响已提交的写操作
func (r *Reconciler) notify(ctx context.Context, touched []*models.Budget) {
	if r.notifier == nil {
		return
	}
	for _, row := range touched {
		if row == nil || !row.Exceeded() {
			continue
		}
		s := r.store.WithContext(ctx)
		user, err := s.Balances.Get(row.UserID)
		if err != nil {
			r.log.Warn("load user for budget alert failed", "user_id", row.UserID, "error", err)
			continue
		}
		name, err := s.Categories.Name(row.CategoryID)
		if err != nil {
			r.log.Warn("load category for budget alert failed", "category_id", row.CategoryID, "error", err)
			continue
		}
		alert := BudgetAlert{User: user, Budget: row, CategoryName: name}
		if err := r.notifier.BudgetExceeded(ctx, alert); err != nil {
			r.log.Warn("budget alert failed", "budget_id", row.ID, "error", err)
		}
	}
}

func appendBudget(list []*models.Budget, row *models.Budget) []*models.Budget {
	if row == nil {
		return list
	}
	return append(list, row)
}
