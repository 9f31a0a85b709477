package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/adapters/config"
	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi/handlers"
	"github.com/stayvia/stayvia-server/internal/adapters/database/postgres"
	"github.com/stayvia/stayvia-server/internal/adapters/database/redis"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/service"
	"github.com/stayvia/stayvia-server/pkg/objstore"
	"github.com/stayvia/stayvia-server/pkg/smtp"
)

type App struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *logger.Logger

	server *http.Server
}

func New(cfg *config.Config) (*App, error) {
	apiLogger, err := logger.Named("api")
	if err != nil {
		return nil, err
	}

	auth, err := httpapi.NewAuth(viper.GetString("service.auth.jwks-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys: %w", err)
	}

	userStorage := postgres.NewUserStorage(cfg.Database)
	postStorage := postgres.NewPostStorage(cfg.Database)
	requestStorage := postgres.NewRequestStorage(cfg.Database)
	verificationStorage := postgres.NewVerificationStorage(cfg.Database)
	conversationStorage := postgres.NewConversationStorage(cfg.Database)

	smtpClient := smtp.NewClient(cfg.SMTPDialer)
	store := objstore.New(
		viper.GetString("service.storage.url"),
		viper.GetString("service.storage.api-key"),
		viper.GetString("service.storage.bucket"),
	)

	queries := cfg.Redis.Queries
	userService := service.NewUserService(apiLogger, userStorage, queries)
	postService := service.NewPostService(apiLogger, postStorage, queries, viper.GetString("settings.link-scheme"))
	requestService := service.NewRequestService(apiLogger, requestStorage, postStorage, queries)
	verificationService := service.NewVerificationService(apiLogger, verificationStorage, userStorage, smtpClient, queries)
	notificationService := service.NewNotificationService(apiLogger, userStorage, postStorage, requestStorage, verificationStorage, queries)
	conversationService := service.NewConversationService(conversationStorage)

	router := handlers.NewRouter(auth, handlers.Handlers{
		Feed:          handlers.NewFeedHandler(apiLogger, notificationService),
		Posts:         handlers.NewPostHandler(apiLogger, postService),
		Requests:      handlers.NewRequestHandler(apiLogger, requestService, postService),
		Users:         handlers.NewUserHandler(apiLogger, userService),
		Verification:  handlers.NewVerificationHandler(apiLogger, verificationService),
		Uploads:       handlers.NewUploadHandler(apiLogger, store, userService),
		Conversations: handlers.NewConversationHandler(apiLogger, conversationService),
	})

	return &App{
		DB:     cfg.Database,
		Redis:  cfg.Redis,
		Logger: apiLogger,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", viper.GetInt("service.server.port")),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Start() {
	go func() {
		logger.Log.Infof("Server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Panicf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Shutdown error: %v", err)
	}
}
