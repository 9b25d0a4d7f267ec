package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget 分类月度预算
// (usuario_id, category_id, month, year) 唯一；Spent 是由流水重新聚合得到的缓存值
type Budget struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"column:usuario_id;not null;uniqueIndex:uk_budgets_bucket,priority:1"`
	CategoryID uint            `json:"category_id" gorm:"not null;uniqueIndex:uk_budgets_bucket,priority:2"`
	Budgeted   decimal.Decimal `json:"budgeted" gorm:"type:decimal(12,2);not null;default:0"`
	Spent      decimal.Decimal `json:"spent" gorm:"type:decimal(12,2);not null;default:0"`
	Month      int             `json:"month" gorm:"not null;uniqueIndex:uk_budgets_bucket,priority:3"`
	Year       int             `json:"year" gorm:"not null;uniqueIndex:uk_budgets_bucket,priority:4"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

// Exceeded 已设定预算且支出超出
func (b Budget) Exceeded() bool {
	return b.Budgeted.IsPositive() && b.Spent.GreaterThan(b.Budgeted)
}
