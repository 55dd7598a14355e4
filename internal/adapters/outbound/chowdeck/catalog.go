// Package chowdeck implements the restaurant catalog: a static list of vendors
// embedded in the binary and menus fetched from the Chowdeck customer API.
package chowdeck

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

const serviceName = "chowdeck"

//go:embed restaurants.yaml
var restaurantsYAML []byte

type menuResponse struct {
	Status  any        `json:"status"`
	Message string     `json:"message"`
	Data    []menuItem `json:"data"`
}

type menuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Tags        []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"tags"`
	Category struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
	Images []struct {
		Path string `json:"path"`
		Rank int    `json:"rank"`
	} `json:"images"`
}

// toDomain converts upstream prices from minor to major units and keeps the first image.
func (m menuItem) toDomain() domain.MenuItem {
	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, t.Name)
	}
	image := domain.DefaultCartItemImage
	if len(m.Images) > 0 && m.Images[0].Path != "" {
		image = m.Images[0].Path
	}
	return domain.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price / 100,
		Currency:    m.Currency,
		Category:    m.Category.Name,
		Tags:        tags,
		Image:       image,
	}
}

// Catalog implements domain.RestaurantCatalog.
type Catalog struct {
	restaurants []domain.Restaurant
	baseURL     string
	http        *http.Client
}

// NewCatalog creates a new Catalog.
func NewCatalog(restaurants []domain.Restaurant, baseURL string, httpClient *http.Client) Catalog {
	return Catalog{
		restaurants: restaurants,
		baseURL:     baseURL,
		http:        httpClient,
	}
}

// LoadRestaurants decodes the embedded restaurant list.
func LoadRestaurants() ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := yaml.Unmarshal(restaurantsYAML, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	return restaurants, nil
}

// ListRestaurants returns a copy of the static catalog.
func (c Catalog) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out, nil
}

// GetMenu fetches the menu of a vendor.
func (c Catalog) GetMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("restaurant.id", restaurantID),
	))
	defer span.End()

	endpoint, err := url.JoinPath(c.baseURL, "customer", "vendor", strconv.FormatInt(restaurantID, 10), "menu")
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, endpoint, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var out menuResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode == http.StatusNotFound {
		err := domain.NewNotFoundErr(fmt.Sprintf("restaurant %d not found", restaurantID))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		err := domain.NewUpstreamErr(serviceName, resp.StatusCode, msg)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if telemetry.RecordErrorAndStatus(span, decodeErr) {
		return nil, fmt.Errorf("unmarshal response: %w", decodeErr)
	}

	items := make([]domain.MenuItem, 0, len(out.Data))
	for _, m := range out.Data {
		items = append(items, m.toDomain())
	}
	span.SetAttributes(attribute.Int("menu.items", len(items)))
	return items, nil
}

// InitRestaurantCatalog registers the Catalog as the domain.RestaurantCatalog.
type InitRestaurantCatalog struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"CHOWDECK_BASE_URL" default:"https://api.chowdeck.com"`
}

// Initialize loads the embedded restaurants and registers the catalog.
func (i InitRestaurantCatalog) Initialize(ctx context.Context) (context.Context, error) {
	restaurants, err := LoadRestaurants()
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.RestaurantCatalog](NewCatalog(restaurants, i.BaseURL, i.HttpClient))
	return ctx, nil
}
