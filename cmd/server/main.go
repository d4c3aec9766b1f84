package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/api/rest"
	"github.com/Dhoini/Customer-microservice/internal/config"
	"github.com/Dhoini/Customer-microservice/internal/db"
	"github.com/Dhoini/Customer-microservice/internal/kafka"
	"github.com/Dhoini/Customer-microservice/internal/kafka/producer"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/repository/postgres"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var log *logger.Logger

func init() {
	// Инициализация логгера
	logLevel := logger.INFO
	if os.Getenv("DEBUG") == "true" {
		logLevel = logger.DEBUG
	}
	log = logger.New(logLevel)
}

func main() {
	log.Infow("Customer microservice starting up...")

	// Загрузка конфигурации
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	// Создаем контекст с возможностью отмены
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Prometheus
	promRegistry := prometheus.NewRegistry()
	systemMetrics := metrics.NewSystemMetrics(promRegistry, log)
	systemMetrics.StartRecording(15 * time.Second)
	defer systemMetrics.Stop()

	// Отдельный zap-логгер для слоя базы данных
	var zapLog *zap.Logger
	if cfg.App.Env == "production" {
		zapLog, err = zap.NewProduction()
	} else {
		zapLog, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to initialize zap logger: %v", err)
	}
	defer zapLog.Sync()

	// Подключение к базе данных
	dbClient, err := db.NewDBClient(ctx, cfg.Database.DSN, zapLog)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Errorw("Error closing database connection", "error", err)
		}
	}()
	log.Infow("Database connection established")

	if err := dbClient.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema: %v", err)
	}

	// Базовые репозитории
	var customerRepo repository.CustomerRepository = postgres.NewCustomerRepository(dbClient.DB(), log)
	orderRepo := postgres.NewOrderRepository(dbClient.DB(), log)

	// Инициализация Redis кеша; без Redis сервис продолжает работать
	if cfg.Redis.Addr != "" {
		redisCache, err := repository.NewRedisCacheRepository(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warnw("Failed to initialize Redis cache, continuing without caching", "error", err)
		} else {
			defer func() {
				if err := redisCache.Close(); err != nil {
					log.Errorw("Error closing Redis connection", "error", err)
				}
			}()
			customerRepo = repository.NewCachedCustomerRepository(customerRepo, redisCache, log)
			log.Infow("Using cached customer repository")
		}
	}

	// Инициализация Kafka продюсера; без Kafka события не публикуются
	var eventProducer producer.EventProducer = producer.NoOpEventProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaConfig := kafka.NewConfig(cfg.Kafka.Brokers)
		saramaConfig := kafka.NewSaramaConfig(kafkaConfig, log)

		syncProducer, err := sarama.NewSyncProducer(kafkaConfig.Brokers, saramaConfig)
		if err != nil {
			log.Warnw("Failed to initialize Kafka producer, continuing without event publishing", "error", err)
		} else {
			eventProducer = producer.NewKafkaEventProducer(syncProducer, log)
			log.Infow("Kafka producer initialized", "brokers", cfg.Kafka.Brokers)
		}
	}
	defer func() {
		if err := eventProducer.Close(); err != nil {
			log.Errorw("Error closing Kafka producer", "error", err)
		}
	}()

	// Сервисы
	customerService := service.NewCustomerService(customerRepo, eventProducer, log)
	orderService := service.NewOrderService(orderRepo, customerRepo, eventProducer, log)

	// Установка режима Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Настройка маршрутизатора и запуск HTTP сервера
	router := rest.SetupRouter(customerService, orderService, promRegistry, log)
	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(cfg.App.ShutdownTimeout) * time.Second
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
