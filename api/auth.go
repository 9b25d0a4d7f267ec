package api

import (
	"errors"
	"net/http"
	"strings"

	"walltea/config"
	"walltea/database"
	"walltea/logging"
	"walltea/middleware"
	"walltea/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Ana"`
	Email    string `json:"email" binding:"required,email,max=100" example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Register 用户注册
// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 201 {object} RegisterResponse "注册成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 409 {object} ErrorResponse "邮箱已注册"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		BadRequest(c, "姓名不能为空")
		return
	}

	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "注册失败"))
		return
	}
	if count > 0 {
		Conflict(c, "该邮箱已被注册")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: string(hashed)}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "该邮箱已被注册")
			return
		}
		InternalError(c, SafeErrorMessage(err, "注册失败"))
		return
	}

	logging.Component("auth").Info("user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, RegisterResponse{Message: "注册成功", UserID: user.ID})
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱 + 密码登录获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} LoginResponse "登录成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "邮箱或密码错误"
// @Failure 429 {object} ErrorResponse "尝试过于频繁"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := database.DB.Where("email = ?", email).Take(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			InternalError(c, SafeErrorMessage(err, "登录失败"))
			return
		}
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "登录成功", Token: token, User: user})
}

// keepPassword 前端回填的密码占位符，提交时表示不修改密码
const keepPassword = "********"

// UpdateProfileRequest 修改资料请求
// password 为空或为占位符 "********" 时保留原密码
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Ana"`
	Email    string `json:"email" binding:"required,email,max=100" example:"ana@example.com"`
	Password string `json:"password" binding:"max=72" example:"********"`
}

// UpdateProfile 修改用户资料
// @Summary 修改用户资料
// @Description 修改姓名和邮箱，可选修改密码；余额不可通过此接口修改
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "用户ID"
// @Param request body UpdateProfileRequest true "资料"
// @Success 200 {object} models.User "修改后的用户"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "未登录或无权修改"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Failure 409 {object} ErrorResponse "邮箱已被其他用户使用"
// @Router /api/user/{userId} [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	requested, err := parseUint(c.Param("userId"))
	if err != nil || requested == 0 {
		BadRequest(c, "无效的用户ID")
		return
	}
	userID, ok := resolveUserID(c, requested)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		BadRequest(c, "姓名不能为空")
		return
	}
	changePassword := req.Password != "" && req.Password != keepPassword
	if changePassword && len(req.Password) < 6 {
		BadRequest(c, "密码至少 6 位")
		return
	}

	var user models.User
	if err := database.DB.Take(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "用户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "修改资料失败"))
		return
	}

	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("email = ? AND id <> ?", req.Email, userID).
		Count(&count).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "修改资料失败"))
		return
	}
	if count > 0 {
		Conflict(c, "该邮箱已被注册")
		return
	}

	updates := map[string]interface{}{"nome": req.Name, "email": req.Email}
	if changePassword {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			InternalError(c, "密码加密失败")
			return
		}
		updates["senha"] = string(hashed)
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "该邮箱已被注册")
			return
		}
		InternalError(c, SafeErrorMessage(err, "修改资料失败"))
		return
	}
	user.Name = req.Name
	user.Email = req.Email

	logging.Component("auth").Info("profile updated", "user_id", user.ID, "password_changed", changePassword)
	c.JSON(http.StatusOK, user)
}
