package api

import (
	"bytes"
	"testing"
	"time"

	"walltea/models"
	"walltea/service"
	"walltea/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	mock.MatchExpectationsInOrder(false)

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM transacoes AS t JOIN categorias c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "category_id", "description", "entity", "payment_method", "transaction_date", "amount", "category_name"}).
			AddRow(2, 1, 1, "mercado", "Carrefour", "pix", date, "-50.00", "Alimentação").
			AddRow(1, 1, 8, "reembolso", "", "", date, "20.00", "Outros"))
	mock.ExpectQuery("FROM `rendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "mes", "salario", "bicos"}).
			AddRow(1, 1, "2024-03", "1000.00", "0"))
	mock.ExpectQuery("SELECT `id`,`transaction_date`,`amount` FROM `transacoes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_date", "amount"}).
			AddRow(1, date, "20.00").
			AddRow(2, date, "-50.00"))

	router := gin.New()
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	w := doRequest(router, "GET", "/export/excel?userId=1", "")

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "walltea_1_")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetTransactions, sheetMonthly}, f.GetSheetList())
	desc, _ := f.GetCellValue(sheetTransactions, "D2")
	assert.Equal(t, "mercado", desc)
	total, _ := f.GetCellValue(sheetTransactions, "C4")
	assert.Equal(t, "共 2 条记录", total)

	month, _ := f.GetCellValue(sheetMonthly, "A2")
	assert.Equal(t, "Mar/2024", month)
	income, _ := f.GetCellValue(sheetMonthly, "B2")
	assert.Equal(t, "1020", income)
	expenses, _ := f.GetCellValue(sheetMonthly, "C2")
	assert.Equal(t, "50", expenses)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel_MissingUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/export/excel", NewExportHandler().ExportExcel)

	w := doRequest(router, "GET", "/export/excel", "")
	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildWorkbook_Empty(t *testing.T) {
	f, err := buildWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	header, _ := f.GetCellValue(sheetTransactions, "G1")
	assert.Equal(t, "金额", header)
	summary, _ := f.GetCellValue(sheetTransactions, "A2")
	assert.Equal(t, "合计", summary)
	rows, err := f.GetRows(sheetMonthly)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildWorkbook_Summary(t *testing.T) {
	rows := []store.TransactionRow{
		{Transaction: models.Transaction{ID: 1, Amount: decimal.RequireFromString("-12.5"), TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, CategoryName: "Alimentação"},
		{Transaction: models.Transaction{ID: 2, Amount: decimal.Zero, TransactionDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)}, CategoryName: "Outros"},
	}
	monthly := []service.MonthlyFinancial{{Month: "Jan", MonthNumber: 1, Year: 2024, Income: decimal.Zero, Expenses: decimal.RequireFromString("12.5")}}

	f, err := buildWorkbook(rows, monthly)
	require.NoError(t, err)
	defer f.Close()

	in, _ := f.GetCellValue(sheetTransactions, "E4")
	out, _ := f.GetCellValue(sheetTransactions, "F4")
	net, _ := f.GetCellValue(sheetTransactions, "G4")
	assert.Equal(t, "收入 0.00", in)
	assert.Equal(t, "支出 12.50", out)
	assert.Equal(t, "-12.5", net)

	balance, _ := f.GetCellValue(sheetMonthly, "D2")
	assert.Equal(t, "-12.5", balance)
}
