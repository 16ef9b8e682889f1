package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/govalues/decimal"
	"github.com/velstore/orderflow/internal/adapter/config"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

// Client resolves product references against the catalog service. The catalog
// stays the source of truth for prices: orders snapshot them at add time.
type Client struct {
	logger *zap.Logger
	host   string
	http   *http.Client
}

func NewClient(cfg *config.Catalog, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		logger: log,
		http:   http.DefaultClient,
	}, nil
}

type productResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	requestStr := "http://" + c.host + "/api/products/" + productID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		c.logger.Error("unexpected status for request",
			zap.String("product", productID), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result productResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	price, err := decimal.NewFromFloat64(result.Price)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &domain.Product{
		ID:       result.ID,
		Title:    result.Title,
		ImageURL: result.ImageURL,
		Price:    price,
	}, nil
}
