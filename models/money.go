package models

import "github.com/shopspring/decimal"

func init() {
	// 金额在 JSON 中以数字输出，与前端图表直接对接
	decimal.MarshalJSONWithoutQuotes = true
}
