package bootstrap

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"corp-portal-be/internal/audit"
	"corp-portal-be/internal/config"
	"corp-portal-be/internal/controller"
	"corp-portal-be/internal/handler"
	"corp-portal-be/internal/identity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/pkg/mailer"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/repository/implementation"
	"corp-portal-be/internal/repository/memory"
	"corp-portal-be/internal/service"
	"corp-portal-be/internal/websocket"
	pkgNats "corp-portal-be/pkg/nats"
	"corp-portal-be/pkg/storage"
)

const (
	tokenTTL         = 24 * time.Hour
	loginMaxAttempts = 5
	loginWindow      = 15 * time.Minute
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	ProfileController   controller.IProfileController
	NewsController      controller.INewsController
	DocumentController  controller.IDocumentController
	KnowledgeController controller.IKnowledgeController
	RequestController   controller.IRequestController
	ProjectController   controller.IProjectController
	SearchController    controller.ISearchController

	// WebSocket chat
	ChatHandler  *handler.ChatHandler
	WebSocketHub *websocket.Hub

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	// Cross-cutting middleware
	AuditMiddleware fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	verifier := identity.NewVerifier(cfg.App.JwtSecret, tokenTTL)
	jwtMiddleware := serverutils.NewJwtMiddleware(verifier)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	objectStorage, err := storage.NewMinioStorage(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	// 2. Event infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	auditBus := audit.NewBus()

	// 3. Repositories
	userRepo := implementation.NewUserRepository(db)
	chatRepo := implementation.NewChatMessageRepository(db)
	newsRepo := implementation.NewNewsRepository(db)
	documentRepo := implementation.NewDocumentRepository(db)
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	requestRepo := implementation.NewRequestRepository(db)
	projectRepo := implementation.NewProjectRepository(db)
	systemLogRepo := implementation.NewSystemLogRepository(db)

	loginThrottle := memory.NewLoginThrottle(loginMaxAttempts, loginWindow)

	// 4. Services
	authService := service.NewAuthService(userRepo, verifier, loginThrottle, natsPub, sysLogger)
	profileService := service.NewProfileService(userRepo)
	newsService := service.NewNewsService(newsRepo, objectStorage, natsPub, sysLogger)
	documentService := service.NewDocumentService(documentRepo, objectStorage, natsPub, sysLogger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	requestService := service.NewRequestService(requestRepo, userRepo, emailService, natsPub, sysLogger)
	projectService := service.NewProjectService(projectRepo, objectStorage, natsPub, sysLogger)
	searchService := service.NewSearchService(newsRepo, documentRepo, knowledgeRepo)
	consumerService := service.NewConsumerService(auditBus, systemLogRepo, sysLogger)

	// 5. WebSocket chat core. Room traffic goes to its own log file so chat
	// volume does not drown the application log.
	chatLogger := logger.NewIsolatedLogger(cfg.Chat.LogFilePath)
	wsHub := websocket.NewHub(chatLogger)
	chatService := service.NewChatService(userRepo, chatRepo, verifier, chatLogger, cfg.Chat.HistoryLimit)
	chatHandler := handler.NewChatHandler(wsHub, chatService, chatLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService, jwtMiddleware),
		ProfileController:   controller.NewProfileController(profileService, jwtMiddleware),
		NewsController:      controller.NewNewsController(newsService, jwtMiddleware),
		DocumentController:  controller.NewDocumentController(documentService, jwtMiddleware),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService, jwtMiddleware),
		RequestController:   controller.NewRequestController(requestService, jwtMiddleware),
		ProjectController:   controller.NewProjectController(projectService, jwtMiddleware),
		SearchController:    controller.NewSearchController(searchService, jwtMiddleware),

		ChatHandler:  chatHandler,
		WebSocketHub: wsHub,

		ConsumerService: consumerService,
		AuditMiddleware: serverutils.NewAuditMiddleware(auditBus),

		Logger: sysLogger,
	}
}
