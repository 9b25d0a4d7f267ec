package store

import (
	"time"

	"walltea/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerStore 流水表
type LedgerStore struct {
	db *gorm.DB
}

// LedgerFilter 流水查询条件，零值字段不参与过滤；日期区间为 [From, To)
type LedgerFilter struct {
	UserID     uint
	CategoryID uint
	From       *time.Time
	To         *time.Time
}

// TransactionRow 流水 + 类别名称
type TransactionRow struct {
	models.Transaction
	CategoryName string `json:"category_name"`
}

// CategoryTotal 按类别名称汇总的支出
type CategoryTotal struct {
	Category   string          `json:"category" gorm:"column:category"`
	TotalSpent decimal.Decimal `json:"total_spent" gorm:"column:total_spent"`
}

// CategorySpend 某个周期内单个类别的支出
type CategorySpend struct {
	CategoryID   uint            `gorm:"column:category_id"`
	CategoryName string          `gorm:"column:category_name"`
	Spent        decimal.Decimal `gorm:"column:spent"`
}

// Insert 新增流水
func (s *LedgerStore) Insert(t *models.Transaction) error {
	return s.db.Create(t).Error
}

// Get 按 id + 用户查询，不属于该用户时返回 ErrNotFound
func (s *LedgerStore) Get(id, userID uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.Where("id = ? AND usuario_id = ?", id, userID).Take(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// Update 覆盖可编辑字段
func (s *LedgerStore) Update(t *models.Transaction) error {
	return s.db.Model(t).
		Where("usuario_id = ?", t.UserID).
		Select("category_id", "description", "entity", "payment_method", "transaction_date", "amount").
		Updates(t).Error
}

// Delete 删除流水
func (s *LedgerStore) Delete(id, userID uint) error {
	res := s.db.Where("id = ? AND usuario_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List 按日期倒序列出流水
func (s *LedgerStore) List(f LedgerFilter) ([]TransactionRow, error) {
	q := s.db.Table("transacoes AS t").
		Select("t.*, c.name AS category_name").
		Joins("JOIN categorias c ON c.id = t.category_id").
		Where("t.usuario_id = ?", f.UserID)

	if f.CategoryID != 0 {
		q = q.Where("t.category_id = ?", f.CategoryID)
	}
	if f.From != nil {
		q = q.Where("t.transaction_date >= ?", DateOnly(*f.From))
	}
	if f.To != nil {
		q = q.Where("t.transaction_date < ?", DateOnly(*f.To))
	}

	rows := make([]TransactionRow, 0)
	if err := q.Order("t.transaction_date DESC, t.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SpentInBucket 对桶内所有支出做完整聚合：SUM(ABS(amount)) WHERE amount < 0
func (s *LedgerStore) SpentInBucket(b Bucket) (decimal.Decimal, error) {
	from, to := b.Range()
	var spent decimal.Decimal
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(ABS(amount)), 0)").
		Where("usuario_id = ? AND category_id = ? AND amount < 0", b.UserID, b.CategoryID).
		Where("transaction_date >= ? AND transaction_date < ?", from, to).
		Row().Scan(&spent)
	if err != nil {
		return decimal.Zero, err
	}
	return spent.Round(MoneyScale), nil
}

// SpentByCategory 全部历史中按类别汇总的支出
func (s *LedgerStore) SpentByCategory(userID uint) ([]CategoryTotal, error) {
	rows := make([]CategoryTotal, 0)
	err := s.db.Table("transacoes AS t").
		Select("c.name AS category, COALESCE(SUM(ABS(t.amount)), 0) AS total_spent").
		Joins("JOIN categorias c ON c.id = t.category_id").
		Where("t.usuario_id = ? AND t.amount < 0", userID).
		Group("c.name").
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TotalSpent = rows[i].TotalSpent.Round(MoneyScale)
	}
	return rows, nil
}

// SpentInPeriod 某月内各类别的支出
func (s *LedgerStore) SpentInPeriod(userID uint, month, year int) ([]CategorySpend, error) {
	from, to := MonthRange(month, year)
	rows := make([]CategorySpend, 0)
	err := s.db.Table("transacoes AS t").
		Select("t.category_id, c.name AS category_name, COALESCE(SUM(ABS(t.amount)), 0) AS spent").
		Joins("JOIN categorias c ON c.id = t.category_id").
		Where("t.usuario_id = ? AND t.amount < 0", userID).
		Where("t.transaction_date >= ? AND t.transaction_date < ?", from, to).
		Group("t.category_id, c.name").
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Spent = rows[i].Spent.Round(MoneyScale)
	}
	return rows, nil
}

// Movements 用户全部流水的日期与金额，用于按月汇总
func (s *LedgerStore) Movements(userID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	err := s.db.Select("id", "transaction_date", "amount").
		Where("usuario_id = ?", userID).
		Order("transaction_date ASC").
		Find(&list).Error
	return list, err
}
