// seed 生成演示数据：一个用户，若干个月的流水、预算和收入
// 所有写入都经过记账引擎，余额和预算已支出与流水保持一致
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"walltea/config"
	"walltea/database"
	"walltea/logging"
	"walltea/models"
	"walltea/service"
	"walltea/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	configFile string
	email      string
	password   string
	months     int
	perMonth   int
	seed       int64
)

func init() {
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（可选）")
	flag.StringVar(&email, "email", "", "演示用户邮箱，默认随机")
	flag.StringVar(&password, "password", "walltea123", "演示用户密码")
	flag.IntVar(&months, "months", 6, "生成最近几个月的数据")
	flag.IntVar(&perMonth, "n", 20, "每月流水条数")
	flag.Int64Var(&seed, "seed", 0, "随机种子，0 表示按时间")
}

var paymentMethods = []string{"pix", "crédito", "débito", "dinheiro", "boleto"}

func main() {
	flag.Parse()

	cfg := config.MustLoadConfig(configFile)
	log := logging.Setup(cfg.Log)

	if err := database.Init(cfg); err != nil {
		log.Error("数据库初始化失败", "error", err)
		os.Exit(1)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	user, err := createUser()
	if err != nil {
		log.Error("创建用户失败", "error", err)
		os.Exit(1)
	}

	var categories []models.Category
	if err := database.DB.Order("id").Find(&categories).Error; err != nil || len(categories) == 0 {
		log.Error("读取类别失败", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	engine := service.NewReconciler(database.DB, nil)
	now := time.Now()

	var txCount, budgetCount int
	for i := months - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		month, year := int(first.Month()), first.Year()

		salary := decimal.NewFromInt(int64(gofakeit.Number(3000, 8000)))
		sideGigs := decimal.NewFromFloat(gofakeit.Price(0, 1500)).Round(2)
		if err := engine.RecordIncome(ctx, service.IncomeInput{
			UserID: user.ID, Month: month, Year: year, Salary: &salary, SideGigs: &sideGigs,
		}); err != nil {
			log.Error("写入收入失败", "month", store.MonthKey(month, year), "error", err)
			os.Exit(1)
		}

		// 一半类别设预算，另一半只有支出
		for _, c := range categories[:len(categories)/2] {
			budgeted := decimal.NewFromInt(int64(gofakeit.Number(2, 12) * 100))
			if err := engine.UpsertBudget(ctx, service.BudgetInput{
				UserID: user.ID, CategoryID: c.ID, Budgeted: &budgeted, Month: month, Year: year,
			}); err != nil {
				log.Error("写入预算失败", "category", c.Name, "error", err)
				os.Exit(1)
			}
			budgetCount++
		}

		_, last := store.MonthRange(month, year)
		days := int(last.Sub(first).Hours()/24) - 1
		for j := 0; j < perMonth; j++ {
			c := categories[gofakeit.Number(0, len(categories)-1)]
			amount := decimal.NewFromFloat(gofakeit.Price(5, 400)).Round(2).Neg()
			if gofakeit.Number(1, 10) == 1 {
				// 偶尔有退款
				amount = amount.Neg()
			}
			if _, err := engine.CreateTransaction(ctx, service.TransactionInput{
				UserID:        user.ID,
				CategoryID:    c.ID,
				Description:   gofakeit.Sentence(3),
				Entity:        gofakeit.Company(),
				PaymentMethod: gofakeit.RandomString(paymentMethods),
				Date:          first.AddDate(0, 0, gofakeit.Number(0, days)),
				Amount:        &amount,
			}); err != nil {
				log.Error("写入流水失败", "error", err)
				os.Exit(1)
			}
			txCount++
		}
	}

	log.Info("演示数据已生成",
		"user_id", user.ID,
		"email", user.Email,
		"password", password,
		"transactions", txCount,
		"budgets", budgetCount,
		"seed", seed,
	)
}

func createUser() (*models.User, error) {
	if email == "" {
		email = gofakeit.Email()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{Name: gofakeit.Name(), Email: email, Password: string(hashed)}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
