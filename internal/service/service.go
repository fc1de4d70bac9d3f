package service

import (
	"context"
	"fmt"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/client"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/feed"

	log "github.com/sirupsen/logrus"
)

// Service assembles the product feed: it drives the client to exhaustion and
// flattens every node in traversal order. The failure policy decides what a
// fetch error looks like to the caller.
type Service struct {
	client     client.ShopifyClient
	normalizer *feed.Normalizer
	policy     domain.FailurePolicy
	errorLog   *log.Logger
}

func NewService(
	shopifyClient client.ShopifyClient,
	normalizer *feed.Normalizer,
	policy domain.FailurePolicy,
	errorLog *log.Logger,
) *Service {
	return &Service{
		client:     shopifyClient,
		normalizer: normalizer,
		policy:     policy,
		errorLog:   errorLog,
	}
}

// BuildFeed fetches the catalog and returns the flattened records in page
// order. Normalization never drops or reorders items.
func (s *Service) BuildFeed(ctx context.Context) ([]domain.FeedRecord, error) {
	nodes, err := s.client.FetchAllProducts(ctx)
	if err != nil {
		switch s.policy {
		case domain.PolicyAbort:
			return nil, fmt.Errorf("feed build failed: %w", err)
		case domain.PolicyPartial:
			s.errorLog.Errorf("Shopify fetch failed, keeping %d already fetched products: %v", len(nodes), err)
			log.Warnf("Building partial feed from %d products after fetch error: %v", len(nodes), err)
		default:
			s.errorLog.Errorf("Shopify fetch failed, returning empty feed: %v", err)
			log.Warnf("Returning empty feed after fetch error: %v", err)
			nodes = nil
		}
	}

	records := make([]domain.FeedRecord, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, s.normalizer.Normalize(node))
	}

	if err == nil {
		log.Infof("Feed built with %d products", len(records))
	}

	return records, nil
}
