package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"foodorders/internal/config"
	"foodorders/internal/database"
	"foodorders/internal/handlers"
	"foodorders/internal/logging"
	"foodorders/internal/middleware"
	"foodorders/internal/migration"
	"foodorders/internal/seed"
	"foodorders/internal/store/mongostore"
	"foodorders/internal/store/pgstore"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.ConnectPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	log.Info().Msg("postgres connected")

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)
	log.Info().Str("database", db.Name()).Msg("mongo connected")

	if err := database.EnsureRestaurantIndexes(db); err != nil {
		log.Warn().Err(err).Msg("restaurant index warning")
	}
	if err := database.EnsurePeopleIndexes(db); err != nil {
		log.Warn().Err(err).Msg("people index warning")
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Warn().Err(err).Msg("order index warning")
	}

	sqlStore := pgstore.New(pool, log)
	mongoStore := mongostore.New(db, log)
	stores := handlers.Stores{SQL: sqlStore, Mongo: mongoStore}
	admin := handlers.AdminDeps{
		Pool:   pool,
		Seeder: seed.NewSeeder(pool, log),
		Seed:   cfg.Seed,
		SQL:    sqlStore,
		Mongo:  mongoStore,
		Runner: migration.NewRunner(sqlStore, mongoStore, log),
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("validator registration failed")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLog(log), gin.Recovery())

	r.POST("/student1/:mode/place_order", handlers.PlaceOrder(stores, cfg.Debug))
	r.POST("/student1/:mode/pay", handlers.Pay(stores, cfg.Debug))
	r.GET("/student1/:mode/report", handlers.RestaurantReport(stores, cfg.Debug))

	r.POST("/student2/:mode/assign_delivery", handlers.AssignDelivery(stores, cfg.Debug))
	r.GET("/student2/:mode/report", handlers.RiderReport(stores, cfg.Debug))

	r.POST("/import_reset", handlers.Reset(admin, cfg.Debug))
	r.POST("/migrate_to_mongo", handlers.Migrate(admin, cfg.Debug))
	r.GET("/health", handlers.Health(admin))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
