package container

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/client"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/feed"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/logging"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/server"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.ShopifyClient
	Service *service.Service
	Server  *server.Server
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	shopifyClient := client.NewShopifyClient(cfg.Shopify)

	classifier := feed.NewClassifier(cfg.Feed.Labels)
	normalizer := feed.NewNormalizer(cfg.Feed, classifier)

	feedErrorLog := logging.NewFeedErrorLog(cfg.Log)

	svc := service.NewService(
		shopifyClient,
		normalizer,
		domain.FailurePolicy(cfg.Feed.OnError),
		feedErrorLog,
	)

	srv := server.New(cfg.Server, svc)

	return &Container{
		Config:  cfg,
		Client:  shopifyClient,
		Service: svc,
		Server:  srv,
	}, nil
}

// Run serves the feed endpoints until the context is cancelled.
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Serving feed on %s:%d", c.Config.Server.Host, c.Config.Server.Port)
		if err := c.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return c.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
