package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/YaminiCharan14/linen/internal/cache"
	"github.com/YaminiCharan14/linen/internal/clients"
	"github.com/YaminiCharan14/linen/internal/config"
	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/kafka"
	"github.com/YaminiCharan14/linen/internal/logger"
	"github.com/YaminiCharan14/linen/internal/repository/postgresql"
	"github.com/YaminiCharan14/linen/internal/server"
	"github.com/YaminiCharan14/linen/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() { _ = zapLogger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		zapLogger.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	orderRepo := postgresql.NewOrderRepo(database)
	rejectionRepo := postgresql.NewRejectionRepo(database)
	tripRepo := postgresql.NewTripRepo(database)
	settingsRepo := postgresql.NewSettingsRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	initAdmin(ctx, userRepo, zapLogger)

	stg := storage.NewLinenStorage(database, orderRepo, rejectionRepo, tripRepo,
		settingsRepo, outboxRepo, cfg.AuditTopic, zapLogger)

	orderCache := cache.NewOrderCache(stg)
	if err := orderCache.LoadInitialData(ctx); err != nil {
		zapLogger.Warn("Failed to warm order cache", zap.Error(err))
	}

	inventoryClient := clients.NewInventoryClient(cfg.InventoryBaseURL, nil)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewKafkaProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	srv := server.New(stg, userRepo, inventoryClient, orderCache, cfg.BranchID, zapLogger)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gCtx, cfg.HTTPPort)
	})

	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		publisher.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
		return
	}
	log.Println("Server gracefully stopped")
}

// initAdmin seeds the basic-auth user table on first start. A duplicate
// username error just means a prior run already did this.
func initAdmin(ctx context.Context, userRepo storage.UserRepository, zapLogger *zap.Logger) {
	username := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	if err := userRepo.CreateUser(ctx, username, password); err != nil {
		zapLogger.Debug("Admin user not created", zap.Error(err))
		return
	}
	zapLogger.Info("Admin user created", zap.String("username", username))
}
