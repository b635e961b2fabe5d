package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cart-service/config"
	"cart-service/internal/api"
	"cart-service/internal/broker"
	"cart-service/internal/catalog"
	"cart-service/internal/epic"
	"cart-service/internal/models"
	"cart-service/internal/storage"
	"cart-service/internal/store"
	"cart-service/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting cart service")

	tp, err := util.InitTracer("cart-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// The cart must stay usable even when its collaborators are down,
	// so backend failures at startup degrade instead of aborting.
	var fetcher catalog.Fetcher
	pg, err := catalog.NewPostgresFetcher(cfg.Catalog.DatabaseURL)
	if err != nil {
		logger.Warn("Catalog database unavailable, fetches will fail until restart", zap.Error(err))
		fetcher = &catalog.StaticFetcher{Err: err}
	} else {
		defer pg.Close()
		fetcher = pg
		log.Println("Catalog database connected")
	}

	cartStorage, err := storage.NewRedisStorage(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable at startup, cart persistence is best-effort", zap.Error(err))
	} else {
		log.Println("Redis connected")
	}
	defer cartStorage.Close()

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicCart)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	publisher := broker.NewKafkaEventPublisher(producer)

	st := store.New(logger)
	selectors := store.NewSelectors()

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	go st.Run(runCtx)

	runner := epic.NewRunner(st,
		epic.NewRehydrateEpic(cartStorage),
		epic.NewPersistEpic(cartStorage),
		epic.NewCatalogEpic(fetcher),
		epic.NewEventsEpic(publisher),
	)
	runner.Start(runCtx)

	// Startup dispatches: load the persisted cart and the catalog. The
	// persist epic stays gated until the rehydration completes.
	st.Dispatch(models.RehydrateCartNext{})
	st.Dispatch(models.FetchProductsNext{})

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(st, selectors)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	runCancel()
	runner.Wait()

	log.Println("Server exited")
}
