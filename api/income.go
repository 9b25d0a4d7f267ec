package api

import (
	"net/http"

	"walltea/database"
	"walltea/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncomeHandler 月度收入
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// IncomeRequest 收入请求，同一月份重复提交会累加
type IncomeRequest struct {
	UserID   uint             `json:"userId" example:"1"`
	Month    int              `json:"month" example:"3"`
	Year     int              `json:"year" example:"2024"`
	Salary   *decimal.Decimal `json:"salary" swaggertype:"number" example:"3000"`
	SideGigs *decimal.Decimal `json:"sideGigs" swaggertype:"number" example:"250"`
}

// Create 记录收入
// @Summary 记录月度收入
// @Description 工资和副业收入累加到当月记录，并计入余额
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body IncomeRequest true "收入信息"
// @Success 201 {object} MessageResponse "记录成功"
// @Failure 400 {object} ErrorResponse "缺少必填字段"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	userID, ok := resolveUserID(c, req.UserID)
	if !ok {
		return
	}

	in := service.IncomeInput{
		UserID:   userID,
		Month:    req.Month,
		Year:     req.Year,
		Salary:   req.Salary,
		SideGigs: req.SideGigs,
	}
	if err := service.NewReconciler(database.DB, nil).RecordIncome(c.Request.Context(), in); err != nil {
		HandleError(c, err, "记录收入失败")
		return
	}
	Created(c, "收入记录成功")
}

// Monthly 按月收入
// @Summary 按月收入
// @Tags 收入
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {array} service.MonthlyIncome
// @Failure 400 {object} ErrorResponse "缺少 userId"
// @Router /api/incomes-monthly [get]
func (h *IncomeHandler) Monthly(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}
	rows, err := service.NewReporter(database.DB).MonthlyIncomes(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err, "查询月度收入失败")
		return
	}
	c.JSON(http.StatusOK, rows)
}
