package rewards

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Каталог площадки: проверка, что товар существует
type CatalogClient struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewCatalogClient() (*CatalogClient, error) {
	// config
	host := os.Getenv("CATALOG_URL")
	if host == "" {
		return nil, fmt.Errorf("env CATALOG_URL is not set")
	}
	return NewCatalogClientWith(host, os.Getenv("CATALOG_TOKEN"), 5*time.Second), nil
}

func NewCatalogClientWith(baseURL string, token string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func (c *CatalogClient) Exists(ctx context.Context, productId string) (bool, error) {
	if productId == "" {
		return false, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/item/"+url.PathEscape(productId), nil)
	if err != nil {
		return false, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("Catalog service HTTP error: %s", resp.Status)
	}
}
