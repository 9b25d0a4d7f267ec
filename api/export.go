package api

import (
	"fmt"
	"net/url"
	"time"

	"walltea/database"
	"walltea/service"
	"walltea/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

const (
	sheetTransactions = "流水"
	sheetMonthly      = "月度收支"
)

// ExportExcel 导出 Excel
// @Summary 导出流水与月度收支为 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userId query int true "用户ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "缺少 userId"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}

	reporter := service.NewReporter(database.DB)
	ctx := c.Request.Context()
	rows, err := reporter.Transactions(ctx, store.LedgerFilter{UserID: userID})
	if err != nil {
		HandleError(c, err, "查询数据失败")
		return
	}
	monthly, err := reporter.MonthlyFinancials(ctx, userID)
	if err != nil {
		HandleError(c, err, "查询数据失败")
		return
	}

	f, err := buildWorkbook(rows, monthly)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("walltea_%d_%s.xlsx", userID, time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

func buildWorkbook(rows []store.TransactionRow, monthly []service.MonthlyFinancial) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	writeHeader := func(sheet string, headers []string) {
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	// 流水
	f.SetColWidth(sheetTransactions, "A", "A", 10)
	f.SetColWidth(sheetTransactions, "B", "B", 14)
	f.SetColWidth(sheetTransactions, "C", "C", 14)
	f.SetColWidth(sheetTransactions, "D", "E", 24)
	f.SetColWidth(sheetTransactions, "F", "G", 14)
	writeHeader(sheetTransactions, []string{"ID", "日期", "类别", "描述", "对方", "支付方式", "金额"})

	var income, expense float64
	for i, r := range rows {
		row := i + 2
		amount := r.Amount.InexactFloat64()
		f.SetCellValue(sheetTransactions, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetTransactions, fmt.Sprintf("B%d", row), r.TransactionDate.Format("2006-01-02"))
		f.SetCellValue(sheetTransactions, fmt.Sprintf("C%d", row), r.CategoryName)
		f.SetCellValue(sheetTransactions, fmt.Sprintf("D%d", row), r.Description)
		f.SetCellValue(sheetTransactions, fmt.Sprintf("E%d", row), r.Entity)
		f.SetCellValue(sheetTransactions, fmt.Sprintf("F%d", row), r.PaymentMethod)
		f.SetCellValue(sheetTransactions, fmt.Sprintf("G%d", row), amount)
		f.SetCellStyle(sheetTransactions, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		if r.IsExpense() {
			expense += -amount
		} else {
			income += amount
		}
	}

	summaryRow := len(rows) + 2
	f.SetCellValue(sheetTransactions, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetTransactions, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetTransactions, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(rows)))
	f.MergeCell(sheetTransactions, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(sheetTransactions, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("收入 %.2f", income))
	f.SetCellValue(sheetTransactions, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("支出 %.2f", expense))
	f.SetCellValue(sheetTransactions, fmt.Sprintf("G%d", summaryRow), income-expense)
	f.SetCellStyle(sheetTransactions, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	// 月度收支
	f.SetColWidth(sheetMonthly, "A", "D", 14)
	writeHeader(sheetMonthly, []string{"月份", "收入", "支出", "结余"})
	for i, m := range monthly {
		row := i + 2
		f.SetCellValue(sheetMonthly, fmt.Sprintf("A%d", row), fmt.Sprintf("%s/%d", m.Month, m.Year))
		f.SetCellValue(sheetMonthly, fmt.Sprintf("B%d", row), m.Income.InexactFloat64())
		f.SetCellValue(sheetMonthly, fmt.Sprintf("C%d", row), m.Expenses.InexactFloat64())
		f.SetCellValue(sheetMonthly, fmt.Sprintf("D%d", row), m.Income.Sub(m.Expenses).InexactFloat64())
		f.SetCellStyle(sheetMonthly, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), dataStyle)
	}

	return f, nil
}
