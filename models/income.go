package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income 月度收入（工资 + 副业），同一月份重复提交时累加
type Income struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"column:usuario_id;not null;uniqueIndex:uk_rendas_mes,priority:1"`
	Month     string          `json:"month" gorm:"column:mes;size:7;not null;uniqueIndex:uk_rendas_mes,priority:2"` // YYYY-MM
	Salary    decimal.Decimal `json:"salary" gorm:"column:salario;type:decimal(12,2);not null;default:0"`
	SideGigs  decimal.Decimal `json:"side_gigs" gorm:"column:bicos;type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

func (Income) TableName() string {
	return "rendas"
}

// Total 当月收入合计
func (i Income) Total() decimal.Decimal {
	return i.Salary.Add(i.SideGigs)
}
