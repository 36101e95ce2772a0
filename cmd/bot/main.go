package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/repair_booking_bot/internal/app"
	"github.com/Freeeeeet/repair_booking_bot/internal/config"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller"
	"github.com/Freeeeeet/repair_booking_bot/internal/httpapi"
	"github.com/Freeeeeet/repair_booking_bot/internal/repository"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting repair booking bot",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
		zap.Int("admins", len(cfg.AdminIDs)))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped gracefully")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	stores, err := app.LoadStores(ctx, repository.NewSnapshotRepository(storage.KV, logger), logger)
	if err != nil {
		return err
	}

	gateway := service.NewSubmissionService(cfg.Web3FormsAccessKey, cfg.Web3FormsURL, nil, logger)
	if !gateway.Configured() {
		logger.Warn("⚠️ WEB3FORMS_ACCESS_KEY is not set, requests will show the fallback phone")
	}

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	ctrl := controller.NewBotController(botInstance, controller.Deps{
		Catalog:       stores.Catalog,
		Availability:  stores.Availability,
		Content:       stores.Content,
		Gateway:       gateway,
		IsAdmin:       cfg.IsAdmin,
		FallbackPhone: cfg.FallbackPhone,
	}, logger)
	if err := ctrl.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not updated", zap.Error(err))
	}

	scheduler := app.NewScheduler(ctrl.Sessions(), cfg.SessionTTL, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	api := httpapi.NewServer(cfg.HTTPAddr, cfg.HTTPRatePerMin, httpapi.Deps{
		Catalog:      stores.Catalog,
		Availability: stores.Availability,
		Content:      stores.Content,
	}, cfg.Environment, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctrl.Start(gctx)
	})
	g.Go(api.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")
		return api.Shutdown()
	})

	return g.Wait()
}
