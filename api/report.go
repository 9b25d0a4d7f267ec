package api

import (
	"net/http"

	"walltea/database"
	"walltea/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 汇总查询
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

func (h *ReportHandler) reporter() *service.Reporter {
	return service.NewReporter(database.DB)
}

// Expenses 按类别汇总支出
// @Summary 按类别汇总支出
// @Tags 报表
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {array} store.CategoryTotal
// @Failure 400 {object} ErrorResponse "缺少 userId"
// @Router /api/expenses [get]
func (h *ReportHandler) Expenses(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}
	rows, err := h.reporter().ExpensesByCategory(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err, "查询支出失败")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// MonthlyFinancials 按月收支
// @Summary 按月收支
// @Description 收入 = 收入记录 + 正数流水；支出 = 负数流水绝对值；按时间排序
// @Tags 报表
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {array} service.MonthlyFinancial
// @Failure 400 {object} ErrorResponse "缺少 userId"
// @Router /api/monthly-financial-data [get]
func (h *ReportHandler) MonthlyFinancials(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}
	rows, err := h.reporter().MonthlyFinancials(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err, "查询月度收支失败")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Profile 用户资料
// @Summary 用户资料与余额
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} service.Profile
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/user/{userId} [get]
func (h *ReportHandler) Profile(c *gin.Context) {
	requested, err := parseUint(c.Param("userId"))
	if err != nil || requested == 0 {
		BadRequest(c, "无效的用户ID")
		return
	}
	userID, ok := resolveUserID(c, requested)
	if !ok {
		return
	}
	p, err := h.reporter().Profile(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err, "查询用户失败")
		return
	}
	c.JSON(http.StatusOK, p)
}
