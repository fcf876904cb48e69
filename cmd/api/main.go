package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"dropfit/internal/adapter/api"
	"dropfit/internal/adapter/api/handler"
	apimiddleware "dropfit/internal/adapter/api/middleware"
	"dropfit/internal/adapter/api/router"
	"dropfit/internal/adapter/repository"
	"dropfit/internal/infrastructure/email"
	"dropfit/internal/infrastructure/firebase"
	"dropfit/internal/infrastructure/ratelimit"
	"dropfit/internal/infrastructure/storage"
	"dropfit/internal/infrastructure/websocket"
	"dropfit/internal/usecase"
	"dropfit/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		credentialsPath = ""
	} else if credentialsPath != "" {
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	dropRepo := repository.NewFirestoreDropRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)
	communityRepo := repository.NewFirestoreCommunityRepository(firestoreClient)
	notifyRepo := repository.NewFirestoreNotifyRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)
	emailService := email.NewSendgridClient(cfg.SendgridApiKey, cfg.SendgridFrom, cfg.BaseURL)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, dropRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, time.Duration(cfg.SettingsCacheTTL)*time.Second)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, settingsUseCase, emailService, wsManager)
	dropUseCase := usecase.NewDropUseCase(dropRepo, notifyRepo, emailService)
	communityUseCase := usecase.NewCommunityUseCase(communityRepo, storageClient)
	notifyUseCase := usecase.NewNotifyUseCase(notifyRepo, emailService)
	adminUseCase := usecase.NewAdminUseCase(orderRepo, productRepo, userRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		productUseCase,
		orderUseCase,
		dropUseCase,
		communityUseCase,
		notifyUseCase,
		adminUseCase,
		settingsUseCase,
		rateLimiter,
	)
	handler.SetupCartHandler(cfg.SessionSecret, productUseCase)
	handler.SetupWebSocketHandler(wsManager, authClient)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
