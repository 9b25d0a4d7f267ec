package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"walltea/config"
	"walltea/database"
	"walltea/logging"
	"walltea/middleware"
	"walltea/router"
	"walltea/service"
)

// @title Wall&Tea 记账 API
// @version 1.0
// @description 流水、预算、收入与余额对账 API
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
	testEmail   string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 3000 或 :3000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&testEmail, "test-email", "", "向该地址发送一封测试邮件后退出")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("Wall&Tea v%s\n", version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.Log)

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Info("命令行指定端口", "port", port)
	}

	config.PrintConfig()

	if testEmail != "" {
		if err := service.NewEmailService(&cfg.Email).SendTestEmail(testEmail); err != nil {
			log.Error("测试邮件发送失败", "error", err)
			os.Exit(1)
		}
		log.Info("测试邮件已发送", "to", testEmail)
		return
	}

	if err := database.Init(cfg); err != nil {
		log.Error("数据库初始化失败", "error", err)
		os.Exit(1)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Info("Wall&Tea 已启动",
		"version", version,
		"api", fmt.Sprintf("http://localhost%s/api/", cfg.Server.Port),
		"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port),
	)

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Error("服务器启动失败", "error", err)
		os.Exit(1)
	}
}
