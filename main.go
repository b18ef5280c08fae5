package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/cron"
	"tripdesk/database"
	auditRepoPkg "tripdesk/database/repository/audit"
	catalogRepoPkg "tripdesk/database/repository/catalog"
	providerRepoPkg "tripdesk/database/repository/provider"
	quoteRepoPkg "tripdesk/database/repository/quote"
	userRepoPkg "tripdesk/database/repository/user"
	"tripdesk/handlers"
	"tripdesk/routes"
	"tripdesk/services/audit"
	"tripdesk/services/catalog"
	"tripdesk/services/experience"
	"tripdesk/services/provider"
	"tripdesk/services/quote"
	"tripdesk/services/storage"
	"tripdesk/services/user"
	"tripdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Repositories.
	usrRepo := userRepoPkg.NewMongoUserRepo()
	qRepo := quoteRepoPkg.NewMongoQuoteRepo()
	svcRepo := catalogRepoPkg.NewMongoServiceRepo()
	vtRepo := catalogRepoPkg.NewMongoVehicleTypeRepo()
	vRepo := catalogRepoPkg.NewMongoVehicleRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	expRepo := providerRepoPkg.NewMongoExperienceRepo()
	audRepo := auditRepoPkg.NewMongoAuditRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: usrRepo}
	quoteService := &quote.DefaultQuoteService{
		Repo:            qRepo,
		ServiceRepo:     svcRepo,
		VehicleTypeRepo: vtRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		ServiceRepo:     svcRepo,
		VehicleTypeRepo: vtRepo,
		VehicleRepo:     vRepo,
		ProviderRepo:    provRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo:           provRepo,
		ExperienceRepo: expRepo,
	}
	imageService := &experience.DefaultImageService{
		Repo:    expRepo,
		Storage: storageService,
	}
	auditService := audit.NewAuditService(audRepo)
	defer auditService.Close()

	cron.InitMaintenanceWorker(auditService, imageService)

	router := routes.SetupRouter(&routes.Handlers{
		UserRepo:  usrRepo,
		Auth:      &handlers.AuthHandler{UserService: userService},
		Quote:     &handlers.QuoteHandler{Service: quoteService},
		Catalog:   &handlers.CatalogHandler{Service: catalogService},
		Provider:  &handlers.ProviderHandler{Service: providerService},
		Image:     &handlers.ImageHandler{Service: imageService},
		Admin:     &handlers.AdminHandler{UserService: userService, AuditService: auditService},
		Dashboard: &handlers.DashboardHandler{
			QuoteService: quoteService,
			ServiceRepo:  svcRepo,
			VehicleRepo:  vRepo,
			ProviderRepo: provRepo,
		},
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Mongo disconnect failed", zap.Error(err))
	}
}
