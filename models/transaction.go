package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 流水记录
// Amount 带符号：负数为支出，正数为收入
type Transaction struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"column:usuario_id;not null;index:idx_transacoes_bucket,priority:1"`
	CategoryID      uint            `json:"category_id" gorm:"not null;index:idx_transacoes_bucket,priority:2"`
	Description     string          `json:"description" gorm:"size:255;not null"`
	Entity          string          `json:"entity" gorm:"size:100"`
	PaymentMethod   string          `json:"payment_method" gorm:"size:50"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"type:date;not null;index:idx_transacoes_bucket,priority:3"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transacoes"
}

// IsExpense 是否为支出，金额为 0 不算支出
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
