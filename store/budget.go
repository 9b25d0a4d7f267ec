package store

import (
	"errors"

	"walltea/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetStore 预算表
type BudgetStore struct {
	db *gorm.DB
}

// BudgetLine 某月的预算行 + 类别名称
type BudgetLine struct {
	ID           uint            `gorm:"column:id"`
	CategoryID   uint            `gorm:"column:category_id"`
	CategoryName string          `gorm:"column:category_name"`
	Budgeted     decimal.Decimal `gorm:"column:budgeted"`
	Spent        decimal.Decimal `gorm:"column:spent"`
}

// Upsert 以 (用户, 类别, 月, 年) 为键写入预算
func (s *BudgetStore) Upsert(b Bucket, budgeted, spent decimal.Decimal) error {
	row := models.Budget{
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Year:       b.Year,
		Budgeted:   budgeted,
		Spent:      spent,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "category_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"budgeted", "spent", "updated_at"}),
	}).Create(&row).Error
}

// Find 按桶查找预算行
func (s *BudgetStore) Find(b Bucket) (*models.Budget, error) {
	var row models.Budget
	err := s.db.Where("usuario_id = ? AND category_id = ? AND month = ? AND year = ?",
		b.UserID, b.CategoryID, b.Month, b.Year).Take(&row).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// Get 按 id + 用户查询
func (s *BudgetStore) Get(id, userID uint) (*models.Budget, error) {
	var row models.Budget
	if err := s.db.Where("id = ? AND usuario_id = ?", id, userID).Take(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// SetSpent 写入重新聚合后的支出；桶没有预算行时不创建，返回 nil
func (s *BudgetStore) SetSpent(b Bucket, spent decimal.Decimal) (*models.Budget, error) {
	row, err := s.Find(b)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(row).Update("spent", spent).Error; err != nil {
		return nil, err
	}
	row.Spent = spent
	return row, nil
}

// Update 覆盖预算行的可编辑字段
func (s *BudgetStore) Update(row *models.Budget) error {
	return s.db.Model(row).
		Where("usuario_id = ?", row.UserID).
		Select("category_id", "budgeted", "spent", "month", "year").
		Updates(row).Error
}

// Delete 删除预算，对流水无影响
func (s *BudgetStore) Delete(id, userID uint) error {
	res := s.db.Where("id = ? AND usuario_id = ?", id, userID).Delete(&models.Budget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForPeriod 某月全部预算行
func (s *BudgetStore) ListForPeriod(userID uint, month, year int) ([]BudgetLine, error) {
	rows := make([]BudgetLine, 0)
	err := s.db.Table("budgets AS b").
		Select("b.id, b.category_id, c.name AS category_name, b.budgeted, b.spent").
		Joins("JOIN categorias c ON c.id = b.category_id").
		Where("b.usuario_id = ? AND b.month = ? AND b.year = ?", userID, month, year).
		Order("c.name").
		Scan(&rows).Error
	return rows, err
}
