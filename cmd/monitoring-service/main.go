package main

import (
	"CloudDeck_Monitoring/internal/monitoring/alert"
	"CloudDeck_Monitoring/internal/monitoring/api/handler"
	"CloudDeck_Monitoring/internal/monitoring/api/routes"
	"CloudDeck_Monitoring/internal/monitoring/config"
	"CloudDeck_Monitoring/internal/monitoring/incident"
	"CloudDeck_Monitoring/internal/monitoring/metrics"
	"CloudDeck_Monitoring/internal/monitoring/probe"
	"CloudDeck_Monitoring/internal/monitoring/publisher"
	"CloudDeck_Monitoring/internal/monitoring/remediate"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"CloudDeck_Monitoring/internal/monitoring/scheduler"
	"CloudDeck_Monitoring/internal/monitoring/service"
	"CloudDeck_Monitoring/pkg/hub"
	"CloudDeck_Monitoring/pkg/infra"
	"CloudDeck_Monitoring/pkg/logger"
	"CloudDeck_Monitoring/pkg/mail"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/monitoring-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitoring-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	//set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}

	//set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up live event fan-out
	eventHub := hub.NewHub(zapLogger)
	go eventHub.Run()
	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.HealthEventsTopic)
	defer kafkaWriter.Close()
	pub := publisher.NewMultiPublisher(
		publisher.NewKafkaPublisher(kafkaWriter),
		publisher.NewHubPublisher(eventHub),
	)
	eventConsumer := publisher.NewHealthEventConsumer(
		infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.HealthEventsTopic),
		eventHub, zapLogger)
	eventConsumer.Start()

	// set up dependencies
	appRepo := repository.NewCachedAppRepository(redisClient, repository.NewAppRepository(db), appConfig.Redis.CacheTTL)
	incidentRepo := repository.NewIncidentRepository(db)
	checkHistoryRepo := repository.NewCheckHistoryRepository(esClient)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	notifier := alert.NewNotifier(zapLogger, alert.DefaultSenders(mailSender, 10*time.Second))
	remediator := remediate.NewRemediator(
		remediate.NewCloudBackend(appConfig.Remediation.ProviderURL, appConfig.Remediation.RequestTimeout),
		appRepo, pub, zapLogger)
	checkPipeline := scheduler.NewPipeline(
		probe.NewHTTPProber(), appRepo, incident.NewManager(incidentRepo),
		notifier, remediator, checkHistoryRepo, pub, zapLogger)
	aggregator := metrics.NewAggregator(appRepo, incidentRepo, appConfig.Monitoring.IncidentRetention, zapLogger)
	sched := scheduler.NewScheduler(scheduler.Config{
		CheckInterval:  appConfig.Monitoring.CheckInterval,
		RollupInterval: appConfig.Monitoring.RollupInterval,
		BatchSize:      appConfig.Monitoring.BatchSize,
		WorkerCount:    appConfig.Monitoring.WorkerCount,
	}, appRepo, checkPipeline, aggregator, zapLogger)
	sched.Start()

	monitoringService := service.NewMonitoringService(sched, appRepo, incidentRepo, checkHistoryRepo, mailSender)
	monitoringHandler := handler.NewMonitoringHandler(zapLogger, monitoringService)

	// Create cronjob for daily report
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		zapLogger.Info("daily report cronjob called")
		e := monitoringService.ReportFleetHealth(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.Mail.AdminMailAddress)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddMonitoringRoutes(r, monitoringHandler, eventHub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	sched.Stop()
	eventConsumer.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
