package api

import (
	"net/http"
	"strconv"

	"walltea/database"
	"walltea/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler 预算处理器
type BudgetHandler struct {
	notifier service.Notifier
}

func NewBudgetHandler(notifier service.Notifier) *BudgetHandler {
	return &BudgetHandler{notifier: notifier}
}

func (h *BudgetHandler) reconciler() *service.Reconciler {
	return service.NewReconciler(database.DB, h.notifier)
}

// BudgetRequest 预算请求
type BudgetRequest struct {
	UserID         uint             `json:"userId" example:"1"`
	CategoryID     uint             `json:"categoryId" example:"1"`
	BudgetedAmount *decimal.Decimal `json:"budgetedAmount" swaggertype:"number" example:"500"`
	Month          int              `json:"month" example:"3"`
	Year           int              `json:"year" example:"2024"`
}

func (r *BudgetRequest) input(c *gin.Context, resolve userResolver) (service.BudgetInput, bool) {
	userID, ok := resolve(c, r.UserID)
	if !ok {
		return service.BudgetInput{}, false
	}
	return service.BudgetInput{
		UserID:     userID,
		CategoryID: r.CategoryID,
		Budgeted:   r.BudgetedAmount,
		Month:      r.Month,
		Year:       r.Year,
	}, true
}

// Upsert 设定预算
// @Summary 设定预算
// @Description 按 (用户, 类别, 月, 年) 写入预算，已支出从流水现算；重复提交结果一致
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body BudgetRequest true "预算信息"
// @Success 201 {object} MessageResponse "保存成功"
// @Failure 400 {object} ErrorResponse "缺少必填字段"
// @Router /api/budgets [post]
func (h *BudgetHandler) Upsert(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, ok := req.input(c, resolveUserID)
	if !ok {
		return
	}

	if err := h.reconciler().UpsertBudget(c.Request.Context(), in); err != nil {
		HandleError(c, err, "保存预算失败")
		return
	}
	Created(c, "预算保存成功")
}

// Update 修改预算
// @Summary 修改预算
// @Tags 预算
// @Accept json
// @Produce json
// @Param id path int true "预算ID"
// @Param request body BudgetRequest true "预算信息"
// @Success 200 {object} MessageResponse "修改成功"
// @Failure 400 {object} ErrorResponse "缺少必填字段或目标月份已有该类别预算"
// @Failure 404 {object} ErrorResponse "记录不存在或不属于当前用户"
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, ok := req.input(c, resolveOwnerID)
	if !ok {
		return
	}

	if err := h.reconciler().UpdateBudget(c.Request.Context(), id, in); err != nil {
		HandleError(c, err, "修改预算失败")
		return
	}
	OK(c, "预算修改成功")
}

// Delete 删除预算
// @Summary 删除预算
// @Tags 预算
// @Produce json
// @Param id path int true "预算ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 401 {object} ErrorResponse "缺少 userId"
// @Failure 404 {object} ErrorResponse "记录不存在或不属于当前用户"
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, ok := queryOwnerID(c)
	if !ok {
		return
	}

	if err := h.reconciler().DeleteBudget(c.Request.Context(), id, userID); err != nil {
		HandleError(c, err, "删除预算失败")
		return
	}
	OK(c, "预算删除成功")
}

// Status 某月预算状态
// @Summary 某月预算状态
// @Description 已设预算的类别，加上当月有支出但未设预算的类别（budgeted=0，kind=synthesized）
// @Tags 预算
// @Produce json
// @Param userId query int true "用户ID"
// @Param month query int false "月份，默认当前月"
// @Param year query int false "年份，默认当前年"
// @Success 200 {array} service.BudgetStatusRow
// @Failure 400 {object} ErrorResponse "参数错误"
// @Router /api/budgets [get]
func (h *BudgetHandler) Status(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}
	month, err := optionalInt(c.Query("month"))
	if err != nil {
		BadRequest(c, "month 格式错误")
		return
	}
	year, err := optionalInt(c.Query("year"))
	if err != nil {
		BadRequest(c, "year 格式错误")
		return
	}

	rows, err := service.NewReporter(database.DB).BudgetStatus(c.Request.Context(), userID, month, year)
	if err != nil {
		HandleError(c, err, "查询预算失败")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
