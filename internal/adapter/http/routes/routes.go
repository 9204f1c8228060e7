package routes

import (
	"context"
	"log"
	_ "quotedesk/docs" // generated by swag init
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/http/middleware"
	repository2 "quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/infrastructure/delivery"
	"quotedesk/internal/infrastructure/documents"
	"quotedesk/internal/infrastructure/seed"
	"quotedesk/internal/infrastructure/storage"
	"quotedesk/internal/usecase"
	"quotedesk/internal/usecase/interfaces"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 15 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(router, cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(router *gin.Engine, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	seedItems, err := seed.LoadWorkQueue(cfg.WorkQueueSeedFile)
	if err != nil {
		return err
	}
	workQueueRepo, err := repository2.NewWorkQueueMemoryRepository(seedItems)
	if err != nil {
		return err
	}
	draftRepo := repository2.NewQuotationDraftMemoryRepository()
	settingsRepo := repository2.NewBusinessSettingsMemoryRepository(entities.DefaultBusinessSettings())

	archive, err := newQuotationArchive(ctx, cfg)
	if err != nil {
		return err
	}

	var objectStorage interfaces.IObjectStorage
	if cfg.Minio.Enabled() {
		minioStorage, err := storage.NewMinioStorage(cfg.Minio)
		if err != nil {
			return err
		}
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			log.Printf("[routes][minio] bucket not ready, uploads disabled bucket=%s err=%v", cfg.Minio.Bucket, err)
		} else {
			objectStorage = minioStorage
		}
	} else {
		log.Printf("[routes][minio] MINIO_ENDPOINT not set, logo and document uploads disabled")
	}

	gateway := delivery.NewSimulatedGateway(cfg.Delivery.FailMethods...)
	renderer := documents.NewPDFRenderer()

	quotationUseCase := usecase.NewQuotationUseCase(draftRepo, workQueueRepo, archive, renderer, settingsRepo)
	workQueueUseCase := usecase.NewWorkQueueUseCase(workQueueRepo, gateway, renderer, objectStorage, settingsRepo, cfg.Delivery.Concurrency)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, objectStorage, gateway)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	workQueueHandler := handlers.NewWorkQueueHandler(workQueueUseCase)
	dashboardHandler := handlers.NewDashboardHandler(workQueueUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler)
	addWorkQueueRoutes(v1, workQueueHandler, dashboardHandler)
	addSettingsRoutes(v1, settingsHandler)
	return nil
}

func newQuotationArchive(ctx context.Context, cfg *config.Config) (interfaces.IQuotationArchive, error) {
	if cfg.Archive.Backend != config.ArchiveBackendDynamoDB {
		return repository2.NoopQuotationArchive{}, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	log.Printf("[routes][dynamodb] archiving submitted quotations table=%s", cfg.Archive.Table)
	return repository2.NewQuotationDynamoArchive(ddb, cfg.Archive.Table), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
}
