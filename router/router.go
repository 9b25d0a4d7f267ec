package router

import (
	"net/http"
	"time"

	"walltea/api"
	"walltea/config"
	_ "walltea/docs"
	"walltea/logging"
	"walltea/middleware"
	"walltea/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// 登录/注册限流：每 IP 每分钟 10 次
const (
	authAttempts = 10
	authWindow   = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logging.Component("http")))

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	notifier := budgetNotifier(cfg)

	authHandler := api.NewAuthHandler(cfg)
	transactionHandler := api.NewTransactionHandler(notifier)
	budgetHandler := api.NewBudgetHandler(notifier)
	reportHandler := api.NewReportHandler()
	incomeHandler := api.NewIncomeHandler()
	categoryHandler := api.NewCategoryHandler()
	exportHandler := api.NewExportHandler()

	apiGroup := r.Group("/api")
	{
		// 认证相关路由（无需登录）
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.LoginRateLimit(authAttempts, authWindow))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 修改资料必须登录
		apiGroup.PUT("/user/:userId", middleware.JWTAuth(), authHandler.UpdateProfile)

		// 携带 token 时以 token 中的用户为准
		core := apiGroup.Group("")
		core.Use(middleware.OptionalJWT())
		{
			transactions := core.Group("/transactions")
			{
				transactions.GET("", transactionHandler.List)
				transactions.POST("", transactionHandler.Create)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			budgets := core.Group("/budgets")
			{
				budgets.GET("", budgetHandler.Status)
				budgets.POST("", budgetHandler.Upsert)
				budgets.PUT("/:id", budgetHandler.Update)
				budgets.DELETE("/:id", budgetHandler.Delete)
			}

			core.GET("/expenses", reportHandler.Expenses)
			core.GET("/monthly-financial-data", reportHandler.MonthlyFinancials)
			core.GET("/user/:userId", reportHandler.Profile)

			core.GET("/categories", categoryHandler.List)
			core.GET("/categorias", categoryHandler.List)

			core.POST("/incomes", incomeHandler.Create)
			core.GET("/incomes-monthly", incomeHandler.Monthly)

			core.GET("/export/excel", exportHandler.ExportExcel)
		}
	}

	return r
}

// budgetNotifier 同时开启邮件和预算提醒时发送超支邮件，否则不通知
func budgetNotifier(cfg *config.Config) service.Notifier {
	if !cfg.BudgetAlert.Enabled || !cfg.Email.Enabled {
		return nil
	}
	logging.Component("router").Info("budget alert enabled", "smtp_host", cfg.Email.Host)
	return service.NewEmailService(&cfg.Email)
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
