package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/handlers"
	"github.com/Freeeeeet/repair_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/repair_booking_bot/internal/service"
	"github.com/Freeeeeet/repair_booking_bot/internal/wizard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Deps - зависимости Telegram-контроллера
type Deps struct {
	Catalog       *service.CatalogService
	Availability  *service.AvailabilityService
	Content       *service.ContentService
	Gateway       wizard.Gateway
	IsAdmin       func(telegramID int64) bool
	FallbackPhone string
	Now           func() time.Time
}

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	sessions        *state.Manager
	logger          *zap.Logger
}

func NewBotController(botInstance *bot.Bot, deps Deps, logger *zap.Logger) *BotController {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	// Создаём менеджер сессий: у каждого пользователя свой визард.
	// Reset визарда сбрасывает и незавершённый диалог ввода.
	var stateManager *state.Manager
	stateManager = state.NewManager(func(telegramID int64) *wizard.Wizard {
		return wizard.New(wizard.Deps{
			Catalog:       deps.Catalog,
			Schedule:      deps.Availability,
			Gateway:       deps.Gateway,
			FallbackPhone: deps.FallbackPhone,
			OnReset:       func() { stateManager.ClearState(telegramID) },
			Now:           deps.Now,
			Logger:        logger.With(zap.Int64("telegram_id", telegramID)),
		})
	})

	// Создаём адаптер для callback handlers
	stateAdapter := state.NewAdapter(stateManager)

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(callbacks.Deps{
		Catalog:       deps.Catalog,
		Availability:  deps.Availability,
		Content:       deps.Content,
		StateManager:  stateAdapter,
		IsAdmin:       deps.IsAdmin,
		FallbackPhone: deps.FallbackPhone,
		Now:           deps.Now,
		Logger:        logger,
	})

	// Создаём обработчики команд на тех же зависимостях
	cmdHandlers := handlers.NewHandlers(callbackHandler.Handler, stateManager, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		sessions:        stateManager,
		logger:          logger,
	}
}

// Sessions возвращает менеджер сессий для фоновой очистки
func (c *BotController) Sessions() *state.Manager {
	return c.sessions
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды. /start принимает параметр ссылки, поэтому по префиксу
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/book", bot.MatchTypeExact, c.handlers.HandleBook)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypeExact, c.handlers.HandleAdmin)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start a repair request"},
		{Command: "book", Description: "📋 Continue my request"},
		{Command: "help", Description: "❓ Help"},
		{Command: "cancel", Description: "✖️ Stop typing a value"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
