package api

import (
	"net/http"
	"time"

	"walltea/database"
	"walltea/service"
	"walltea/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 流水处理器
type TransactionHandler struct {
	notifier service.Notifier
}

// NewTransactionHandler notifier 可为 nil
func NewTransactionHandler(notifier service.Notifier) *TransactionHandler {
	return &TransactionHandler{notifier: notifier}
}

func (h *TransactionHandler) reconciler() *service.Reconciler {
	return service.NewReconciler(database.DB, h.notifier)
}

// TransactionRequest 新增/修改流水请求
// amount 带符号：负数为支出，正数为收入，0 合法
type TransactionRequest struct {
	UserID          uint             `json:"userId" example:"1"`
	CategoryID      uint             `json:"categoryId" example:"1"`
	Description     string           `json:"description" example:"Supermercado"`
	Entity          string           `json:"entity" example:"Mercado Livre"`
	PaymentMethod   string           `json:"payment_method" example:"pix"`
	TransactionDate string           `json:"transaction_date" example:"2024-03-10"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"number" example:"-50.00"`
}

func (r *TransactionRequest) input(c *gin.Context, resolve userResolver) (service.TransactionInput, bool) {
	userID, ok := resolve(c, r.UserID)
	if !ok {
		return service.TransactionInput{}, false
	}
	date, err := service.ParseTransactionDate(r.TransactionDate)
	if err != nil {
		HandleError(c, err, "日期格式错误")
		return service.TransactionInput{}, false
	}
	return service.TransactionInput{
		UserID:        userID,
		CategoryID:    r.CategoryID,
		Description:   r.Description,
		Entity:        r.Entity,
		PaymentMethod: r.PaymentMethod,
		Date:          date,
		Amount:        r.Amount,
	}, true
}

// Create 新增流水
// @Summary 新增流水
// @Description 写入流水并在同一事务内调整余额、重算所属类别当月的已支出
// @Tags 流水
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "流水信息"
// @Success 201 {object} MessageResponse "创建成功"
// @Failure 400 {object} ErrorResponse "缺少必填字段"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, ok := req.input(c, resolveUserID)
	if !ok {
		return
	}

	if _, err := h.reconciler().CreateTransaction(c.Request.Context(), in); err != nil {
		HandleError(c, err, "创建流水失败")
		return
	}
	Created(c, "流水创建成功")
}

// Update 修改流水
// @Summary 修改流水
// @Description 修改任意字段；余额按差额调整，新旧两个类别/月份都重新聚合
// @Tags 流水
// @Accept json
// @Produce json
// @Param id path int true "流水ID"
// @Param request body TransactionRequest true "流水信息"
// @Success 200 {object} MessageResponse "修改成功"
// @Failure 400 {object} ErrorResponse "缺少必填字段"
// @Failure 404 {object} ErrorResponse "记录不存在或不属于当前用户"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, ok := req.input(c, resolveOwnerID)
	if !ok {
		return
	}

	if err := h.reconciler().UpdateTransaction(c.Request.Context(), id, in); err != nil {
		HandleError(c, err, "修改流水失败")
		return
	}
	OK(c, "流水修改成功")
}

// Delete 删除流水
// @Summary 删除流水
// @Tags 流水
// @Produce json
// @Param id path int true "流水ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 401 {object} ErrorResponse "缺少 userId"
// @Failure 404 {object} ErrorResponse "记录不存在或不属于当前用户"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, ok := queryOwnerID(c)
	if !ok {
		return
	}

	if err := h.reconciler().DeleteTransaction(c.Request.Context(), id, userID); err != nil {
		HandleError(c, err, "删除流水失败")
		return
	}
	OK(c, "流水删除成功")
}

// List 流水列表
// @Summary 流水列表
// @Description 按日期倒序，可按类别和日期区间 [from, to] 过滤
// @Tags 流水
// @Produce json
// @Param userId query int true "用户ID"
// @Param categoryId query int false "类别ID"
// @Param from query string false "开始日期 (2024-01-01)"
// @Param to query string false "结束日期 (2024-12-31)"
// @Success 200 {array} store.TransactionRow
// @Failure 400 {object} ErrorResponse "缺少 userId"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := queryUserID(c, BadRequest)
	if !ok {
		return
	}
	categoryID, err := parseUint(c.Query("categoryId"))
	if err != nil {
		BadRequest(c, "categoryId 格式错误")
		return
	}

	filter := store.LedgerFilter{UserID: userID, CategoryID: categoryID}
	if s := c.Query("from"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			BadRequest(c, "结束日期格式错误，应为: 2006-01-02")
			return
		}
		// 包含结束日期当天
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	rows, err := service.NewReporter(database.DB).Transactions(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err, "查询流水失败")
		return
	}
	c.JSON(http.StatusOK, rows)
}
