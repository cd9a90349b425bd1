package bootstrap

import (
	"context"
	"log"

	"braik-ai-be/internal/config"
	"braik-ai-be/internal/controller"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/repository/implementation"
	"braik-ai-be/internal/repository/memory"
	"braik-ai-be/internal/service"
	"braik-ai-be/internal/websocket"
	"braik-ai-be/pkg/ai"
	"braik-ai-be/pkg/ai/gemini"
	"braik-ai-be/pkg/database"
	"braik-ai-be/pkg/events"
	"braik-ai-be/pkg/kvstore"

	pktNats "braik-ai-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	EntryController    controller.IEntryController
	CalendarController controller.ICalendarController
	ChatController     controller.IChatController
	InsightController  controller.IInsightController
	ChannelController  controller.IChannelController

	// Background workers (run by main)
	AnalysisBus *service.AnalysisBus

	// WebSockets
	WebSocketHub *websocket.Hub
	Gateway      ai.Gateway

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 1. Key-value store backend
	store := newStore(cfg)
	repos := implementation.NewRepositories(store)
	sessionCache := memory.NewSessionCache()

	// 2. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Audit trail: every domain event lands in the structured log.
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		err := natsSub.Subscribe("events.>", "braik-audit", func(_ context.Context, event events.Event) error {
			sysLogger.Info("Audit", event.EventType(), event.Payload())
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to start audit consumer: %v", err)
		}
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// 3. AI gateway
	var gateway ai.Gateway
	if cfg.Keys.GoogleGemini == "" {
		log.Println("[WARN] GOOGLE_GEMINI_API_KEY not set: AI features disabled")
		gateway = ai.NewDisabled()
	} else {
		client, err := gemini.New(context.Background(), cfg.Keys.GoogleGemini)
		if err != nil {
			log.Printf("[WARN] Failed to initialize Gemini client: %v (AI features disabled)", err)
			gateway = ai.NewDisabled()
		} else {
			gateway = client
		}
	}

	// 4. WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/alerts.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	authService := service.NewAuthService(repos.Users, sessionCache, natsPub, cfg.Auth.TokenExpiryHours, sysLogger)
	entryService := service.NewEntryService(repos.Entries)
	calendarService := service.NewCalendarService(repos.Calendar, repos.Entries)
	reminderService := service.NewReminderService(repos.Reminders)
	insightService := service.NewInsightService(repos.Insights, repos.Entries, repos.Calendar, gateway, wsHub, natsPub, sysLogger)
	analysisBus := service.NewAnalysisBus(insightService, sysLogger)
	strategyService := service.NewStrategyService(repos.Entries, repos.Calendar, gateway)
	chatService := service.NewChatService(repos.History, repos.Sessions, repos.Entries, repos.Insights, gateway, strategyService, analysisBus, sysLogger)
	scanService := service.NewScanService(repos.Entries, gateway)
	channelService := service.NewChannelService(repos.Channels, repos.Entries, gateway, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		EntryController:    controller.NewEntryController(entryService, scanService, authService),
		CalendarController: controller.NewCalendarController(calendarService, reminderService),
		ChatController:     controller.NewChatController(chatService, strategyService, authService),
		InsightController:  controller.NewInsightController(insightService),
		ChannelController:  controller.NewChannelController(channelService, authService),
		AnalysisBus:        analysisBus,
		WebSocketHub:       wsHub,
		Gateway:            gateway,
		Logger:             sysLogger,
	}
}

// newStore picks the key-value backend. Memory is the default and
// needs no external service; redis and postgres share the same blob
// semantics.
func newStore(cfg *config.Config) kvstore.Store {
	switch cfg.Store.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid Redis URL for store backend: %v", err)
		}
		log.Println("[INFO] Using store backend: REDIS")
		return kvstore.NewRedisStore(redis.NewClient(opt))
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Store.PostgresDSN)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		store, err := kvstore.NewGormStore(db)
		if err != nil {
			log.Fatalf("[FATAL] Unable to migrate kv store: %v", err)
		}
		log.Println("[INFO] Using store backend: POSTGRES")
		return store
	default:
		log.Println("[INFO] Using store backend: MEMORY")
		return kvstore.NewMemoryStore()
	}
}
