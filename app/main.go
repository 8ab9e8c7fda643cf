package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Guyuepp/go-clean-social/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-clean-social/internal/repository/mysql"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/go-clean-social/internal/repository/redis"
	"github.com/Guyuepp/go-clean-social/internal/rest"
	"github.com/Guyuepp/go-clean-social/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-social/internal/token"
	"github.com/Guyuepp/go-clean-social/internal/usecase/comment"
	"github.com/Guyuepp/go-clean-social/internal/usecase/notification"
	"github.com/Guyuepp/go-clean-social/internal/usecase/post"
	"github.com/Guyuepp/go-clean-social/internal/usecase/social"
	"github.com/Guyuepp/go-clean-social/internal/usecase/user"
	"github.com/Guyuepp/go-clean-social/internal/workers"
)

func openDB(cfg config) (*gorm.DB, error) {
	dialector := mysql.Open(cfg.dsn())
	if cfg.DBDriver == "postgres" {
		dialector = postgres.Open(cfg.dsn())
	}
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(dialector, gormCfg)
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func main() {
	cfg := loadConfig()
	setupLogger(cfg)
	if err := cfg.validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// prepare database
	db, err := openDB(cfg)
	if err != nil {
		logrus.Fatalf("could not connect to %s after retries: %v", cfg.DBDriver, err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()
	if err := db.AutoMigrate(model.All()...); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	profileRepo := mysqlRepo.NewProfileRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)

	// posts and likes go through the coordination layer so the post cache stays fresh
	postCache := myRedisCache.NewPostCache(client)
	postRepo := repository.NewPostRepository(mysqlRepo.NewPostRepository(db), postCache, userRepo)
	likeRepo := repository.NewLikeRepository(mysqlRepo.NewLikeRepository(db), postCache)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := workers.NewNotificationWorker(notificationRepo)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		notifier.Start(ctx)
	}()

	// Build service Layer
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	postSvc := post.NewService(postRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, postRepo, userRepo, bloomRepo)
	socialSvc := social.NewService(postRepo, likeRepo, followRepo, userRepo, bloomRepo, notifier)
	userSvc := user.NewService(userRepo, profileRepo, followRepo, tokens, user.NewProfileHook(profileRepo))
	notificationSvc := notification.NewService(notificationRepo)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// prepare gin
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestLogger())
	route.Use(middleware.CORS(cfg.CORSOrigins))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	rest.RegisterRoutes(route, middleware.AuthMiddleware(tokens), rest.Handlers{
		User:         rest.NewUserHandler(userSvc),
		Post:         rest.NewPostHandler(postSvc),
		Comment:      rest.NewCommentHandler(commentSvc),
		Social:       rest.NewSocialHandler(socialSvc),
		Notification: rest.NewNotificationHandler(notificationSvc),
	})

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for notification worker to flush...")
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logrus.Warn("notification worker did not finish in time")
	}

	logrus.Info("Server exiting")
}
