package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/config"
	"github.com/starcoin-app/payment-core/internal/handlers"
	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/publisher"
	"github.com/starcoin-app/payment-core/internal/registry"
	"github.com/starcoin-app/payment-core/internal/repository/posgrest"
	"github.com/starcoin-app/payment-core/internal/service"
	"github.com/starcoin-app/payment-core/internal/subscriber"
	"github.com/starcoin-app/payment-core/internal/tonchain"
)

type App struct {
	config  *config.Config
	Router  *gin.Engine
	tracker *service.Tracker
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Payment{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	paymentRepo := posgrest.New(db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	eventPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	chainClient := tonchain.NewClient(cfg.TON.APIKey, cfg.TON.APIBaseURL, cfg.TON.WalletAddress, cfg.TON.RequestTimeout)

	locks := service.NewTxLocks()
	ceiling := decimal.NewFromFloat(cfg.Fraud.AmountCeiling)

	fraudGuard := service.NewFraudGuard(paymentRepo, eventPublisher, service.FraudConfig{
		MaxPendingIntents: cfg.Fraud.MaxPendingIntents,
		DuplicateWindow:   cfg.Fraud.DuplicateWindow,
		MaxDuplicates:     cfg.Fraud.MaxDuplicates,
		AmountCeiling:     ceiling,
		PatternSampleSize: cfg.Fraud.PatternSampleSize,
		MaxFailedIntents:  cfg.Fraud.MaxFailedIntents,
		MaxExpiredIntents: cfg.Fraud.MaxExpiredIntents,
		MinCreationGap:    cfg.Fraud.MinCreationGap,
		TokenSecret:       cfg.Payments.TokenSecret,
		TokenTTL:          cfg.Payments.TokenTTL,
	})

	engine := service.NewVerificationEngine(paymentRepo, chainClient, eventPublisher, locks, cfg.TON.RequestTimeout, ceiling)

	a.tracker = service.NewTracker(paymentRepo, engine, a.sessionRegistry(), service.TrackerConfig{
		InitialDelay: cfg.Tracker.InitialDelay,
		BackoffStep:  cfg.Tracker.BackoffStep,
		MaxInterval:  cfg.Tracker.MaxInterval,
	})

	reconciler := service.NewWebhookReconciler(paymentRepo, eventPublisher, locks, cfg.Payments.WebhookSecret)

	paymentService := service.NewPaymentService(paymentRepo, fraudGuard, engine, chainClient, service.PaymentsConfig{
		ExpiryOffset:  cfg.Payments.ExpiryOffset,
		WalletAddress: cfg.TON.WalletAddress,
	})

	paymentHandler := handlers.NewPaymentHandler(paymentService, a.tracker, reconciler, fraudGuard)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.initSubscribers(paymentHandler, eventPublisher, cfg.Kafka.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) Shutdown() {
	if a.tracker != nil {
		a.tracker.Shutdown()
	}
}

// sessionRegistry picks the tracking-session store: Redis when configured,
// otherwise the in-process map (sessions then die with the process).
func (a *App) sessionRegistry() registry.SessionRegistry {
	if a.config.Redis.ADDR == "" {
		return registry.NewMemory()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.ADDR,
		Password: a.config.Redis.PASSWORD,
	})
	return registry.NewRedis(client, a.config.Redis.SessionTTL)
}

func (a *App) initSubscribers(paymentHandler *handlers.PaymentHandler, eventPublisher *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.ConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, eventPublisher, retryConfig)

	consumer.Listen(context.Background(), func(topic string, value []byte) error {
		logrus.Infof("received message topic=%s", topic)
		if err := paymentHandler.HandleGatewayNotification(context.Background(), topic, value); err != nil {
			logrus.Error(err.Error())
			return err
		}
		return nil
	})
}
