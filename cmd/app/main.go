package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, "hotelbooking")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.RoomsCacheTTLSeconds)*time.Second)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
	defer producer.Close()

	txManager := repository.NewTxManager(pool)
	roomRepo := repository.NewRoomRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	roomService := rooms.NewRoomService(roomRepo, redisCache, logger)
	bookingService := booking.NewBookingService(
		txManager,
		reservationRepo,
		roomRepo,
		producer,
		cfg.Kafka.ReservationsTopic,
		logger,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	reservationHandler := api.NewReservationHandler(bookingService)
	roomHandler := api.NewRoomHandler(roomService, bookingService)

	if err := bootstrap.Run(ctx, cfg, logger, reservationHandler, roomHandler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
