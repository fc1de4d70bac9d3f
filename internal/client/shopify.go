package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

type ShopifyClient interface {
	// FetchAllProducts pages through the whole catalog and returns every
	// product node in page-traversal order. On failure it returns the nodes
	// gathered from the waves that completed, together with the error, so
	// the caller can apply a partial-results policy.
	FetchAllProducts(ctx context.Context) ([]domain.ProductNode, error)
}

type shopifyClient struct {
	rl         ratelimit.Limiter
	config     config.ShopifyConfig
	httpClient *resty.Client
}

func NewShopifyClient(cfg config.ShopifyConfig) ShopifyClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Shopify-Access-Token", cfg.AccessToken)

	rps := cfg.MaxRequestsPerSecond
	if rps < 1 {
		rps = 1
	}

	return &shopifyClient{
		rl:         ratelimit.New(rps),
		config:     cfg,
		httpClient: client,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data *struct {
		Products domain.ProductConnection `json:"products"`
	} `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func (c *shopifyClient) FetchAllProducts(ctx context.Context) ([]domain.ProductNode, error) {
	if c.config.PageSize <= 0 {
		return nil, nil
	}

	products := make([]domain.ProductNode, 0)

	// Pending page cursors; nil means the first page. Each wave drains up to
	// Concurrency cursors in parallel and blocks until all of them finish,
	// then the cursors discovered during the wave seed the next one.
	cursors := []*string{nil}
	wave := 0

	for len(cursors) > 0 {
		batch := cursors
		if len(batch) > c.config.Concurrency {
			batch = batch[:c.config.Concurrency]
		}
		cursors = cursors[len(batch):]
		wave++

		pages := make([]*domain.ProductConnection, len(batch))
		g, gctx := errgroup.WithContext(ctx)

		for i, cursor := range batch {
			g.Go(func() error {
				page, err := c.fetchPage(gctx, cursor)
				if err != nil {
					return err
				}
				pages[i] = page
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			log.Errorf("Product fetch aborted in wave %d: %v", wave, err)
			return products, err
		}

		// Process results in dequeue order so the output keeps the API
		// page-traversal order.
		for _, page := range pages {
			for _, edge := range page.Edges {
				products = append(products, edge.Node)
			}
			if page.PageInfo.HasNextPage {
				next := page.PageInfo.EndCursor
				cursors = append(cursors, &next)
			}
		}

		log.Debugf("Wave %d complete: %d pages, %d products so far", wave, len(batch), len(products))
	}

	return products, nil
}

func (c *shopifyClient) fetchPage(ctx context.Context, cursor *string) (*domain.ProductConnection, error) {
	c.rl.Take()

	body := graphQLRequest{
		Query: productsQuery,
		Variables: map[string]any{
			"cursor":   cursor,
			"pageSize": c.config.PageSize,
		},
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.config.Endpoint)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: request cancelled: %v", ErrTransport, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: HTTP %d %s", ErrTransport, resp.StatusCode(), resp.Status())
	}

	var parsed graphQLResponse
	if err := json.Unmarshal([]byte(resp.String()), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// An errors payload fails the whole fetch; partial pages are never
	// silently dropped.
	if len(parsed.Errors) > 0 && string(parsed.Errors) != "null" {
		return nil, fmt.Errorf("%w: %s", ErrAPI, parsed.Errors)
	}

	if parsed.Data == nil {
		return nil, fmt.Errorf("%w: response has no data field", ErrParse)
	}

	return &parsed.Data.Products, nil
}
