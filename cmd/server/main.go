package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"cashmitra/internal/global"
	"cashmitra/internal/logger"
	"cashmitra/internal/notifier"
	"cashmitra/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initNotifier đăng ký các kênh thông báo (email/webhook) vào event bus dữ liệu
func initNotifier() {
	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	dispatcher := notifier.NewDispatcher(
		notifier.NewEmailChannel(cfg),
		notifier.NewWebhookChannel(cfg.NotifyWebhookURL),
	)
	notifier.Subscribe(dispatcher)
	log.Info("🔔 [NOTIFIER] Notifier subscribed to data change events")
}

// startSessionCleanupWorker chạy worker dọn phiên bán máy quá hạn trong goroutine riêng
func startSessionCleanupWorker(ctx context.Context) {
	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	interval := time.Duration(cfg.SessionCleanupSeconds) * time.Second
	cleanupWorker, err := worker.NewSessionCleanupWorker(interval)
	if err != nil {
		log.WithError(err).Error("Failed to create session cleanup worker, continuing without it")
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("🕒 [SESSION_CLEANUP] Worker goroutine panic")
			}
		}()
		cleanupWorker.Start(ctx)
	}()
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address": cfg.Address,
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(cfg.Address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry và index
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (chỉ khi INITMODE)
	InitDefaultData()

	// Đăng ký notifier vào event bus
	initNotifier()

	// Chạy worker dọn phiên quá hạn
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startSessionCleanupWorker(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
