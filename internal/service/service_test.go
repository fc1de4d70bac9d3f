package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/client"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/feed"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	nodes []domain.ProductNode
	err   error
}

func (f *fakeClient) FetchAllProducts(ctx context.Context) ([]domain.ProductNode, error) {
	return f.nodes, f.err
}

func testNodes(count int) []domain.ProductNode {
	nodes := make([]domain.ProductNode, 0, count)
	for i := 0; i < count; i++ {
		nodes = append(nodes, domain.ProductNode{
			ID:    fmt.Sprintf("gid://shopify/Product/%d", i),
			Title: fmt.Sprintf("Product %d", i),
		})
	}
	return nodes
}

func newTestService(c client.ShopifyClient, policy domain.FailurePolicy) (*Service, *bytes.Buffer) {
	normalizer := feed.NewNormalizer(
		config.FeedConfig{StorefrontBaseURL: "https://barbecuesgalore.ca"},
		feed.NewClassifier(nil),
	)

	errorLog := log.New()
	buf := &bytes.Buffer{}
	errorLog.SetOutput(buf)

	return NewService(c, normalizer, policy, errorLog), buf
}

func TestBuildFeed_Success(t *testing.T) {
	svc, errLog := newTestService(&fakeClient{nodes: testNodes(3)}, domain.PolicyAbort)

	records, err := svc.BuildFeed(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	// Traversal order is preserved and IDs are normalized.
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("%d", i), r.ID)
	}
	assert.Empty(t, errLog.String())
}

func TestBuildFeed_AbortPolicy(t *testing.T) {
	svc, _ := newTestService(&fakeClient{
		nodes: testNodes(250),
		err:   fmt.Errorf("%w: boom", client.ErrAPI),
	}, domain.PolicyAbort)

	records, err := svc.BuildFeed(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrAPI)
	assert.Nil(t, records)
}

func TestBuildFeed_PartialPolicy(t *testing.T) {
	svc, errLog := newTestService(&fakeClient{
		nodes: testNodes(250),
		err:   fmt.Errorf("%w: boom", client.ErrAPI),
	}, domain.PolicyPartial)

	records, err := svc.BuildFeed(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 250)

	// Exactly one error entry recorded.
	entries := strings.Count(errLog.String(), "\n")
	assert.Equal(t, 1, entries)
}

func TestBuildFeed_EmptyPolicy(t *testing.T) {
	svc, errLog := newTestService(&fakeClient{
		nodes: testNodes(250),
		err:   fmt.Errorf("%w: boom", client.ErrTransport),
	}, domain.PolicyEmpty)

	records, err := svc.BuildFeed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Contains(t, errLog.String(), "empty feed")
}

func TestBuildFeed_EmptyCatalog(t *testing.T) {
	svc, _ := newTestService(&fakeClient{}, domain.PolicyAbort)

	records, err := svc.BuildFeed(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
