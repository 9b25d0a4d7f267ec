package api

import (
	"errors"
	"net/http"
	"strconv"

	"walltea/config"
	"walltea/logging"
	"walltea/middleware"
	"walltea/service"

	"github.com/gin-gonic/gin"
)

// MessageResponse 写操作成功响应
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 失败响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK 200 {"message": ...}
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Created 201 {"message": ...}
func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// HandleError 按错误类型映射状态码：校验错误 400，不存在/无权访问 404，其余 500
func HandleError(c *gin.Context, err error, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, service.ErrNotFound.Error())
	default:
		logging.Component("api").Error(fallback,
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", middleware.GetRequestID(c),
		)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}

// parseID 解析路径中的 :id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// parseUint 解析可选的数字参数，空串为 0
func parseUint(s string) (uint, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint(v), err
}

// userResolver 确定本次请求操作的用户，返回 false 时已写出响应
type userResolver func(c *gin.Context, requested uint) (uint, bool)

// resolveUserID 携带 token 时以 token 为准，请求里另给的 userId 必须一致；未携带 token 时信任请求中的 userId
func resolveUserID(c *gin.Context, requested uint) (uint, bool) {
	return resolveAs(c, requested, func(c *gin.Context) {
		Unauthorized(c, "无权访问该用户的数据")
	})
}

// resolveOwnerID 用于修改/删除已有记录：userId 与 token 不一致时按记录不存在处理，
// 与"记录属于他人"返回同一个 404，不暴露记录是否存在
func resolveOwnerID(c *gin.Context, requested uint) (uint, bool) {
	return resolveAs(c, requested, func(c *gin.Context) {
		NotFound(c, service.ErrNotFound.Error())
	})
}

func resolveAs(c *gin.Context, requested uint, denied func(c *gin.Context)) (uint, bool) {
	current := middleware.GetCurrentUserID(c)
	if current == 0 {
		return requested, true
	}
	if requested != 0 && requested != current {
		denied(c)
		return 0, false
	}
	return current, true
}

// queryUserID 读取 ?userId=，缺失时由 missing 决定如何响应
func queryUserID(c *gin.Context, missing func(c *gin.Context, message string)) (uint, bool) {
	return queryUser(c, resolveUserID, missing)
}

// queryOwnerID 删除已有记录时读取 ?userId=，缺失返回 401
func queryOwnerID(c *gin.Context) (uint, bool) {
	return queryUser(c, resolveOwnerID, Unauthorized)
}

func queryUser(c *gin.Context, resolve userResolver, missing func(c *gin.Context, message string)) (uint, bool) {
	requested, err := parseUint(c.Query("userId"))
	if err != nil {
		BadRequest(c, "userId 格式错误")
		return 0, false
	}
	userID, ok := resolve(c, requested)
	if !ok {
		return 0, false
	}
	if userID == 0 {
		missing(c, "参数 userId 为必填项")
		return 0, false
	}
	return userID, true
}
