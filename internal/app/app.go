package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/storage"
)

// BuildApp connects the infrastructure, wires every module onto the router,
// and returns a cleanup function that stops the event consumer and closes the
// connections.
func BuildApp(router *gin.Engine, cfg config.Config, log *zap.Logger) (func(), error) {
	// 1. Setup Infrastructure
	redisClient, err := connectRedisWithRetry(cfg.RedisAddr, 5, log)
	if err != nil {
		return nil, err
	}
	store := storage.NewRedisStore(redisClient)

	kafkaReader, err := connectKafkaReaderWithRetry(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID, 5, log)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	// 2. Seed the catalog from the backend. A failed fetch is not fatal, the
	// catalog fills in as events arrive and a resync can be triggered later.
	catalogStore := catalog.NewStore(log)
	fetcher := catalog.NewFetcher(cfg.BackendBaseURL)
	if products, err := fetcher.FetchProducts(context.Background()); err != nil {
		log.Warn("initial catalog fetch failed, starting empty", zap.Error(err))
	} else {
		catalogStore.Replace(products)
	}

	// 3. Register Modules & Routes
	registerModules(router, registryDeps{
		cfg:     cfg,
		storage: store,
		catalog: catalogStore,
		fetcher: fetcher,
		log:     log,
	})

	// 4. Start consuming realtime catalog events.
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		catalog.ConsumeEvents(consumerCtx, kafkaReader, catalogStore, log)
	}()

	cleanup := func() {
		stopConsumer()
		<-done
		if err := kafkaReader.Close(); err != nil {
			log.Warn("closing kafka reader failed", zap.Error(err))
		}
		if err := redisClient.Close(); err != nil {
			log.Warn("closing redis client failed", zap.Error(err))
		}
	}
	return cleanup, nil
}
