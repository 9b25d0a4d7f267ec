package api

import (
	"net/http"

	"walltea/database"
	"walltea/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别（只读）
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 类别列表
// @Summary 获取消费类别列表
// @Tags 类别
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := service.NewReporter(database.DB).Categories(c.Request.Context())
	if err != nil {
		HandleError(c, err, "查询类别失败")
		return
	}
	c.JSON(http.StatusOK, list)
}
