package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lndominguez/apexutravel-sub004/internal/app/commands"
	flightapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/flights"
	offerapp "github.com/lndominguez/apexutravel-sub004/internal/app/handlers/offers"
	"github.com/lndominguez/apexutravel-sub004/internal/app/queries"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/catalog"
	"github.com/lndominguez/apexutravel-sub004/internal/domain/inventory"
	domainoffer "github.com/lndominguez/apexutravel-sub004/internal/domain/offer"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/broker/kafka"
	rediscache "github.com/lndominguez/apexutravel-sub004/internal/infra/cache/redis"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/config"
	mongodb "github.com/lndominguez/apexutravel-sub004/internal/infra/db/mongo"
	ginserver "github.com/lndominguez/apexutravel-sub004/internal/infra/http/gin"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/obs"
	"github.com/lndominguez/apexutravel-sub004/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	stores, ready, cleanup, err := buildStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store wiring failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	var publisher offerapp.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, nil)
		if err != nil {
			logger.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = producer
	} else {
		logger.Info("kafka brokers unset, offer events disabled")
	}

	handlers := buildHandlers(cfg, stores, publisher, logger)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "store_mode", cfg.StoreMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type stores struct {
	catalog   catalog.Store
	flights   catalog.FlightStore
	inventory inventory.Store
	offers    domainoffer.Store
}

func buildStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, func() error, func(), error) {
	if cfg.StoreMode == "mongo" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return stores{}, nil, nil, err
		}
		s := stores{
			catalog:   mongodb.NewCatalogRepository(client.DB),
			flights:   mongodb.NewFlightRepository(client.DB),
			inventory: mongodb.NewInventoryRepository(client.DB),
			offers:    mongodb.NewOfferRepository(client.DB),
		}
		s.catalog = maybeCache(s.catalog, cfg, logger)
		ready := func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		return s, ready, cleanup, nil
	}

	catalogStore := memory.NewCatalogStore()
	flightStore := memory.NewFlightStore()
	inventoryStore := memory.NewInventoryStore()
	offerStore := memory.NewOfferStore()

	path := cfg.FixturesPath
	if path == "" {
		path = filepath.Join("data", "fixtures.json")
	}
	if err := loadFixtures(ctx, path, catalogStore, flightStore, inventoryStore, offerStore, logger); err != nil {
		logger.Warn("fixtures load failed", "error", err, "path", path)
	}

	s := stores{
		catalog:   maybeCache(catalogStore, cfg, logger),
		flights:   flightStore,
		inventory: inventoryStore,
		offers:    offerStore,
	}
	return s, func() error { return nil }, func() {}, nil
}

func maybeCache(next catalog.Store, cfg config.Config, logger *slog.Logger) catalog.Store {
	if cfg.RedisAddr == "" {
		return next
	}
	client := rediscache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	logger.Info("catalog cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CatalogCacheTTL)
	return rediscache.NewCatalogCache(next, client, cfg.CatalogCacheTTL, logger)
}

func buildHandlers(cfg config.Config, s stores, publisher offerapp.EventPublisher, logger *slog.Logger) ginserver.Handlers {
	assembler := &offerapp.Assembler{
		Inventory: s.inventory,
		Catalog:   s.catalog,
		Log:       logger,
	}

	queryBus := queries.NewInMemoryBus()
	queries.Register(queryBus, offerapp.GetOfferQuery{}.Key(), &offerapp.GetOfferHandler{
		Offers:    s.offers,
		Assembler: assembler,
	})
	queries.Register(queryBus, offerapp.ListOffersQuery{}.Key(), &offerapp.ListOffersHandler{
		Offers:    s.offers,
		Assembler: assembler,
	})
	queries.Register(queryBus, flightapp.SearchFlightsQuery{}.Key(), &flightapp.SearchFlightsHandler{
		Flights: s.flights,
		Alternatives: &flightapp.AlternativeDateFinder{
			Flights: s.flights,
			Log:     logger,
			Observe: obs.ObserveAltSearch,
		},
	})

	commandBus := commands.NewInMemoryBus()
	commands.Register(commandBus, offerapp.CreateOfferCommand{}.Key(), &offerapp.CreateOfferHandler{
		Offers:    s.offers,
		Slugs:     &offerapp.SlugAllocator{Offers: s.offers},
		Publisher: publisher,
		Topic:     "offer.created",
		Log:       logger,
	})

	return ginserver.Handlers{
		Offer:      ginserver.OfferHandler{Queries: queryBus},
		Flight:     ginserver.FlightHandler{Queries: queryBus, SearchTimeout: cfg.SearchTimeout},
		AdminOffer: ginserver.AdminOfferHandler{Commands: commandBus},
	}
}
