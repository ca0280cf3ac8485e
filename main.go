package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"gameopolis-api/internal/auth"
	"gameopolis-api/internal/auth/auth_api"
	"gameopolis-api/internal/bookings"
	bookingdb "gameopolis-api/internal/bookings/db"
	"gameopolis-api/internal/bookings/booking_api"
	"gameopolis-api/internal/config"
	"gameopolis-api/internal/database"
	"gameopolis-api/internal/events"
	eventdb "gameopolis-api/internal/events/db"
	"gameopolis-api/internal/events/event_api"
	"gameopolis-api/internal/gallery"
	gallerydb "gameopolis-api/internal/gallery/db"
	"gameopolis-api/internal/gallery/gallery_api"
	"gameopolis-api/internal/kafka"
	"gameopolis-api/internal/logger"
	"gameopolis-api/internal/menu"
	menudb "gameopolis-api/internal/menu/db"
	"gameopolis-api/internal/menu/menu_api"
	"gameopolis-api/internal/ratelimit"
	"gameopolis-api/internal/settings"
	settingsdb "gameopolis-api/internal/settings/db"
	"gameopolis-api/internal/settings/settings_api"
	"gameopolis-api/internal/utils"
)

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.LogAPI(r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}

func recoverer(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("HTTP", fmt.Sprintf("Panic serving %s %s: %v", r.Method, r.URL.Path, rec))
					utils.WriteError(w, http.StatusInternalServerError, "Server error", "")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Gameopolis API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	conf := config.Load()
	if conf.Auth.JWTSecret == "" {
		log.Warn("CONFIG", "JWT_SECRET not set, generated tokens will not survive restarts")
		conf.Auth.JWTSecret = fmt.Sprintf("gameopolis-dev-%d", time.Now().UnixNano())
	}

	ctx := context.Background()

	bunDB, err := database.Open(conf.Database.DSN, log)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect: %v", err))
	}
	defer bunDB.Close()

	if err := database.Migrate(ctx, bunDB); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Migration failed: %v", err))
	}
	if conf.Database.SeedData {
		if err := database.Seed(ctx, bunDB, log); err != nil {
			log.Fatal("DATABASE", fmt.Sprintf("Seeding failed: %v", err))
		}
	}

	var limiter *ratelimit.Limiter
	if conf.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: conf.Redis.Addr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("REDIS", fmt.Sprintf("Connection failed, rate limiting disabled: %v", err))
		} else {
			log.Info("REDIS", fmt.Sprintf("✅ Connected to %s, rate limiting enabled", conf.Redis.Addr))
			limiter = ratelimit.NewLimiter(redisClient, conf.Redis.RateLimit, conf.Redis.RateWindow)
			defer redisClient.Close()
		}
	} else {
		log.Info("REDIS", "REDIS_ADDR not set, rate limiting disabled")
	}

	var producer *kafka.Producer
	if len(conf.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(conf.Kafka.Brokers)
		defer producer.Close()
		log.Info("KAFKA", fmt.Sprintf("Producer initialized for brokers %v", conf.Kafka.Brokers))

		if err := kafka.EnsureTopicsExist(conf.Kafka.Brokers, kafka.Topics); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			log.Info("KAFKA", "Required topics ensured successfully")
		}
	} else {
		log.Info("KAFKA", "KAFKA_ADDR not set, notifications disabled")
	}

	var eventNotifier events.Notifier
	var bookingNotifier bookings.Notifier
	if producer != nil {
		eventNotifier = producer
		bookingNotifier = producer
	}

	authService := auth.NewService(conf.Auth)
	eventService := events.NewService(&eventdb.DB{Bun: bunDB}, eventNotifier, log)
	bookingService := bookings.NewService(&bookingdb.DB{Bun: bunDB}, bookingNotifier, log, conf.Booking.MaxPlayers)
	menuService := menu.NewService(&menudb.DB{Bun: bunDB})
	galleryService := gallery.NewService(&gallerydb.DB{Bun: bunDB})
	settingsService := settings.NewService(&settingsdb.DB{Bun: bunDB})
	passes := bookings.NewPassGenerator(conf.Auth.QRSecret)

	authHandler := auth_api.NewHandler(authService, log)
	eventHandler := event_api.NewHandler(eventService, log)
	bookingHandler := booking_api.NewHandler(bookingService, passes, log)
	menuHandler := menu_api.NewHandler(menuService, log)
	galleryHandler := gallery_api.NewHandler(galleryService, log)
	settingsHandler := settings_api.NewHandler(settingsService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(recoverer(log))
	r.Use(requestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{conf.CORS.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, http.StatusNotFound, "Route not found", "")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			utils.WriteSuccess(w, http.StatusOK, "Gameopolis API is running", utils.Envelope{
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		authHandler.RegisterRoutes(r, authService.Require)
		eventHandler.RegisterRoutes(r, authService.Require, limiter.Middleware("event-register"))
		bookingHandler.RegisterRoutes(r, authService.Require, limiter.Middleware("booking-create"))
		menuHandler.RegisterRoutes(r, authService.Require)
		galleryHandler.RegisterRoutes(r, authService.Require)
		settingsHandler.RegisterRoutes(r, authService.Require)
	})
	log.Info("ROUTER", "Routes registered under /api")

	server := &http.Server{
		Addr:         ":" + conf.Server.Port,
		Handler:      r,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
		IdleTimeout:  conf.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Gameopolis API running on :%s", conf.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "✅ Gameopolis API shutdown complete")
	}
}
