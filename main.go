package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"kdm_backend/internals/configs"
	database "kdm_backend/internals/databases"
	"kdm_backend/internals/middlewares"
	routes "kdm_backend/internals/route"

	eventModel "kdm_backend/internals/features/events/events/model"
	expenseModel "kdm_backend/internals/features/finance/expenses/model"
	paymentModel "kdm_backend/internals/features/finance/payments/model"
	paymentService "kdm_backend/internals/features/finance/payments/service"
	withdrawalModel "kdm_backend/internals/features/finance/withdrawals/model"
	activityModel "kdm_backend/internals/features/progress/activities/model"
	attendanceModel "kdm_backend/internals/features/progress/attendance/model"
	memorizationModel "kdm_backend/internals/features/progress/memorization/model"
	settingsModel "kdm_backend/internals/features/settings/settings/model"
	halaqahModel "kdm_backend/internals/features/students/halaqahs/model"
	studentModel "kdm_backend/internals/features/students/students/model"
	authModel "kdm_backend/internals/features/users/auth/model"
	authScheduler "kdm_backend/internals/features/users/auth/scheduler"
	authService "kdm_backend/internals/features/users/auth/service"
	userModel "kdm_backend/internals/features/users/user/model"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🧱 migrasi skema
	if err := database.DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&studentModel.StudentModel{},
		&halaqahModel.HalaqahModel{},
		&memorizationModel.MemorizationModel{},
		&attendanceModel.AttendanceModel{},
		&activityModel.ActivityModel{},
		&expenseModel.ExpenseModel{},
		&withdrawalModel.WithdrawalModel{},
		&paymentModel.PaymentModel{},
		&eventModel.EventModel{},
		&settingsModel.VoucherModel{},
		&settingsModel.BankAccountModel{},
		&settingsModel.PriceSettingModel{},
		&settingsModel.BonusSettingModel{},
		&settingsModel.ExpenseCategoryModel{},
	); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	// 👤 akun bawaan (admin, guest, akun demo)
	authService.SeedDefaultUsers(database.DB)

	// ⏱ scheduler setelah DB siap
	authScheduler.StartBlacklistCleanupScheduler(database.DB)

	// ✅ MIDTRANS
	useMidtransProd := false
	if v := os.Getenv("MIDTRANS_USE_PROD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useMidtransProd = b
		}
	}
	paymentService.InitMidtrans(configs.MidtransServerKey, useMidtransProd)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
