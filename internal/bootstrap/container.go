package bootstrap

import (
	"context"
	"log"

	"bookquiz-be/internal/config"
	"bookquiz-be/internal/controller"
	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/internal/repository/memory"
	"bookquiz-be/internal/repository/redisstore"
	"bookquiz-be/internal/repository/unitofwork"
	"bookquiz-be/internal/service"
	"bookquiz-be/pkg/coze"
	"bookquiz-be/pkg/coze/session"
	"bookquiz-be/pkg/events"
	"bookquiz-be/pkg/llm/deepseek"
	"bookquiz-be/pkg/quizgen"
	"bookquiz-be/pkg/store"

	pktNats "bookquiz-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	BookController     controller.IBookController
	ProgressController controller.IProgressController
	ChatController     controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Internal Job Queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	var conversationStore store.ConversationStore
	if cfg.App.ConversationStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		conversationStore = redisstore.NewConversationRepository(rdb)
		log.Println("[INFO] Using Conversation Store: REDIS")
	} else {
		conversationStore = memory.NewConversationRepository()
		log.Println("[INFO] Using Conversation Store: MEMORY")
	}

	// 4. AI Providers
	llmProvider := deepseek.NewDeepSeekProvider(
		cfg.DeepSeek.APIKey,
		cfg.DeepSeek.BaseURL,
		cfg.DeepSeek.Model,
		cfg.DeepSeek.Timeout,
	)
	log.Printf("[INFO] Using LLM Provider: DEEPSEEK (%s)", cfg.DeepSeek.Model)

	cozeClient := coze.NewClient(coze.Config{
		APIKey:          cfg.Coze.APIKey,
		BaseURL:         cfg.Coze.BaseURL,
		BotID:           cfg.Coze.BotID,
		Timeout:         cfg.Coze.Timeout,
		PollMaxAttempts: cfg.Coze.PollMaxAttempts,
		PollInterval:    cfg.Coze.PollInterval,
	}, sysLogger)

	sessionManager := session.NewManager(conversationStore, cozeClient, sysLogger)

	// 5. Question Pipeline
	genLogger := logger.NewIsolatedLogger("logs/generation.log")
	themeGen := quizgen.NewThemeGenerator(llmProvider, genLogger)
	questionGen := quizgen.NewQuestionGenerator(llmProvider, genLogger)
	angleAssigner := quizgen.NewAngleAssigner(nil)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Quizgen.TopicName)
	generationService := service.NewGenerationService(
		uowFactory,
		themeGen,
		questionGen,
		angleAssigner,
		genLogger,
		natsPub,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Quizgen.TopicName,
		generationService,
		genLogger,
	)

	// Audit trail for domain events. Durable consumer, so events published
	// while this instance was down are replayed on reconnect.
	if natsSub != nil {
		err := natsSub.Subscribe("events.>", "bookquiz-eventlog", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("events", "Domain event", map[string]interface{}{
				"type":    evt.EventType(),
				"payload": evt.Payload(),
			})
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to domain events: %v", err)
		}
	}

	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenExpiry, natsPub)
	bookService := service.NewBookService(uowFactory, publisherService)
	progressService := service.NewProgressService(uowFactory)
	chatService := service.NewChatService(cozeClient, sessionManager)

	// 7. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		BookController:     controller.NewBookController(bookService, generationService),
		ProgressController: controller.NewProgressController(progressService),
		ChatController:     controller.NewChatController(chatService),

		ConsumerService: consumerService,
	}
}
