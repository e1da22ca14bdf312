package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Social-Interaction/internal/config"
	"github.com/Guyuepp/Go-Social-Interaction/internal/events"
	mysqlRepo "github.com/Guyuepp/Go-Social-Interaction/internal/repository/mysql"
	redisCache "github.com/Guyuepp/Go-Social-Interaction/internal/repository/redis"
	"github.com/Guyuepp/Go-Social-Interaction/internal/rest"
	"github.com/Guyuepp/Go-Social-Interaction/internal/rest/middleware"
	"github.com/Guyuepp/Go-Social-Interaction/internal/usecase/interaction"
	"github.com/Guyuepp/Go-Social-Interaction/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	topicCreateTimeout = 15 * time.Second
	shutdownTimeout    = 5 * time.Second
)

func main() {
	cfg := config.Load()
	cfg.SetupLogger()

	db := openDB(cfg.Database)
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()
	if err := mysqlRepo.InitTables(db); err != nil {
		logrus.Fatalf("failed to migrate tables: %v", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Host + ":" + cfg.Cache.Port,
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	q := openMQ(cfg.MQ)

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		logrus.Fatalf("invalid SNOWFLAKE_NODE %d: %v", cfg.SnowflakeNode, err)
	}
	producer, err := events.NewInteractionProducer(q, cfg.MQ.Topic, node)
	if err != nil {
		logrus.Fatal(err)
	}

	// Prepare Repository
	store := mysqlRepo.NewInteractionRepository(db)
	deadLetters := mysqlRepo.NewDeadLetterRepository(db)
	cache := redisCache.NewInteractionCache(client, cfg.Cache.MembershipTTL)

	svc := interaction.NewService(cache, store, producer)

	// Start workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := q.Consumer(cfg.MQ.Topic, events.ReconcilerGroup)
	if err != nil {
		logrus.Fatalf("failed to create consumer for %s: %v", cfg.MQ.Topic, err)
	}
	reconciler := workers.NewReconciler(store, deadLetters, consumer, workers.ReconcilerConfig{
		Workers:       cfg.Reconciler.Workers,
		Buffer:        cfg.Reconciler.Buffer,
		RetryInterval: cfg.Reconciler.RetryInterval,
		RetryMax:      cfg.Reconciler.RetryMax,
		MaxRetries:    cfg.Reconciler.MaxRetries,
	})
	reconcilerDone := make(chan struct{})
	go func() {
		defer close(reconcilerDone)
		if err := reconciler.Start(ctx); err != nil {
			logrus.Errorf("reconciler stopped: %v", err)
		}
	}()

	if cfg.AuditInterval > 0 {
		auditor := workers.NewAuditWorker(store, cache, cfg.AuditInterval, cfg.AuditBatchSize)
		go auditor.Start(ctx)
	}
	replayer := workers.NewReplayWorker(deadLetters, cache, producer)

	// prepare gin
	route := gin.Default()
	route.Use(middleware.Metrics())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.Use(middleware.Identity())

	handler := rest.NewInteractionHandler(svc)
	handler.RegisterRoutes(route)

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.AdminToken == "" {
		logrus.Warn("ADMIN_TOKEN is not set, admin routes will reject every request")
	}
	admin := route.Group("/admin", middleware.AdminToken(cfg.AdminToken))
	admin.POST("/dead-letters/replay", rest.ReplayDeadLetters(replayer))

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for reconciler to drain...")
	if err := reconciler.Stop(); err != nil {
		logrus.Warnf("failed to close consumer: %v", err)
	}
	<-reconcilerDone

	logrus.Info("Server exiting")
}

func openDB(c config.Database) *gorm.DB {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Pass, c.Host, c.Port, c.Name)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	logrus.Fatalf("could not connect to database after retries: %v", err)
	return nil
}

// openMQ builds the event channel and makes sure the interaction topic exists.
func openMQ(c config.MQ) mq.MQ {
	var q mq.MQ
	switch c.Driver {
	case "kafka":
		var err error
		q, err = kafka.NewMQ(c.Network, c.Addresses)
		if err != nil {
			logrus.Fatalf("failed to connect to kafka %v: %v", c.Addresses, err)
		}
	case "memory":
		q = memory.NewMQ()
	default:
		logrus.Fatalf("unknown MQ_DRIVER %q", c.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), topicCreateTimeout)
	defer cancel()
	if err := q.CreateTopic(ctx, c.Topic, c.Partitions); err != nil {
		logrus.Fatalf("failed to create topic %s with %d partitions: %v", c.Topic, c.Partitions, err)
	}
	return q
}
