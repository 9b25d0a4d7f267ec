package store

import (
	"fmt"
	"time"
)

// MoneyScale 金额列的小数位，与 decimal(12,2) 一致
// sqlite 把 decimal 列存为浮点，聚合结果需按此精度取整
const MoneyScale = 2

// Bucket 预算聚合的维度：用户 + 类别 + 自然月
type Bucket struct {
	UserID     uint
	CategoryID uint
	Month      int
	Year       int
}

// BucketOf 按流水日期的自然年月归桶，不做时区换算
func BucketOf(userID, categoryID uint, date time.Time) Bucket {
	return Bucket{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      int(date.Month()),
		Year:       date.Year(),
	}
}

// Range 返回 [当月1日, 次月1日) 的日期区间
func (b Bucket) Range() (time.Time, time.Time) {
	return MonthRange(b.Month, b.Year)
}

func (b Bucket) String() string {
	return fmt.Sprintf("%d/%d/%04d-%02d", b.UserID, b.CategoryID, b.Year, b.Month)
}

// MonthRange 返回某年某月的半开区间
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DateOnly 取日期的年月日部分，存为 UTC 零点
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthKey 收入表使用的 YYYY-MM
func MonthKey(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey 解析 YYYY-MM
func ParseMonthKey(key string) (month, year int, err error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, fmt.Errorf("无效的月份 %q: %w", key, err)
	}
	return int(t.Month()), t.Year(), nil
}
