package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/client"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/export"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/feed"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/service"

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

func newTestServer(c client.ShopifyClient, policy domain.FailurePolicy) *Server {
	normalizer := feed.NewNormalizer(
		config.FeedConfig{StorefrontBaseURL: "https://barbecuesgalore.ca"},
		feed.NewClassifier(nil),
	)

	errorLog := log.New()
	errorLog.SetOutput(&strings.Builder{})

	svc := service.NewService(c, normalizer, policy, errorLog)
	return New(config.ServerConfig{Host: "localhost", Port: 8080}, svc)
}

func TestHandleProducts(t *testing.T) {
	s := newTestServer(&fakeClient{nodes: []domain.ProductNode{
		{ID: "gid://shopify/Product/1", Title: "Product 1"},
		{ID: "gid://shopify/Product/2", Title: "Product 2"},
	}}, domain.PolicyAbort)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var env export.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, 200, env.Code)
	require.Len(t, env.Products, 2)
	assert.Equal(t, "1", env.Products[0].ID)
	assert.Equal(t, "Product 1", env.Products[0].Title)
}

func TestHandleProducts_FetchFailure(t *testing.T) {
	s := newTestServer(&fakeClient{
		err: fmt.Errorf("%w: boom", client.ErrAPI),
	}, domain.PolicyAbort)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env export.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, 500, env.Code)
	assert.Empty(t, env.Products)
	assert.Contains(t, env.Message, "boom")
}

func TestHandleGoogleCSV(t *testing.T) {
	s := newTestServer(&fakeClient{nodes: []domain.ProductNode{
		{ID: "gid://shopify/Product/1", Title: "Product 1"},
	}}, domain.PolicyAbort)

	req := httptest.NewRequest(http.MethodGet, "/feeds/google.csv", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inline")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "id,title,description,link,image_link,availability,price,brand,gtin,condition,google_product_category,custom_label_0")
	assert.Contains(t, body, "Product 1")
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(&fakeClient{}, domain.PolicyAbort)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
