package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/pkg/config"
	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// ErrUnavailable is returned for every failure mode of the remote catalog:
// unset base URL, network errors, non-2xx statuses, and malformed bodies.
// Callers treat them all the same and fall back to the static catalog.
var ErrUnavailable = fmt.Errorf("remote catalog unavailable")

// Client fetches catalog data from the optional upstream catalog API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: cfg.RemoteBaseURL,
		http:    &http.Client{Timeout: cfg.RemoteTimeout},
	}
}

// Enabled reports whether a remote base URL is configured at all.
func (c *Client) Enabled() bool { return c.baseURL != "" }

type productDTO struct {
	ID       string            `json:"id"`
	Region   string            `json:"region"`
	Category string            `json:"category"`
	Titles   map[string]string `json:"titles"`
	Price    string            `json:"price"`
	Currency string            `json:"currency"`
	Image    string            `json:"image"`
	IsNew    bool              `json:"is_new"`
}

type productsResponse struct {
	Region   string       `json:"region"`
	Category string       `json:"category"`
	Products []productDTO `json:"products"`
}

// Products queries the upstream catalog for one region and category. The
// upstream echoes the selection it answered for; a mismatched echo means the
// response is for a different selection and is discarded.
func (c *Client) Products(ctx context.Context, q catalog.Query) ([]catalog.Product, error) {
	if !c.Enabled() {
		return nil, ErrUnavailable
	}

	endpoint := fmt.Sprintf("%s/catalog/products", c.baseURL)
	params := url.Values{}
	params.Set("region", q.Region.String())
	params.Set("category", string(q.Category))
	params.Set("lang", q.Language.String())
	if q.Search != "" {
		params.Set("q", q.Search)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if body.Region != q.Region.String() || body.Category != string(q.Category) {
		return nil, fmt.Errorf("%w: stale response for %s/%s", ErrUnavailable, body.Region, body.Category)
	}

	out := make([]catalog.Product, 0, len(body.Products))
	for _, dto := range body.Products {
		p, err := mapProduct(dto)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		out = append(out, p)
	}
	return out, nil
}

type categoriesResponse struct {
	Region     string   `json:"region"`
	Categories []string `json:"categories"`
}

// Categories queries the upstream for a region's category rail. The upstream
// echoes the region it answered for; a mismatch means the response belongs to
// another selection and is discarded.
func (c *Client) Categories(ctx context.Context, region enums.Region) ([]catalog.Category, error) {
	if !c.Enabled() {
		return nil, ErrUnavailable
	}

	endpoint := fmt.Sprintf("%s/catalog/categories", c.baseURL)
	params := url.Values{}
	params.Set("region", region.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body categoriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if body.Region != region.String() {
		return nil, fmt.Errorf("%w: stale response for %s", ErrUnavailable, body.Region)
	}

	out := make([]catalog.Category, 0, len(body.Categories))
	for _, raw := range body.Categories {
		key := enums.CategoryKey(raw)
		if !key.IsValid() {
			return nil, fmt.Errorf("%w: bad category %q", ErrUnavailable, raw)
		}
		out = append(out, catalog.Category{Key: key, Regions: []enums.Region{region}})
	}
	return out, nil
}

func mapProduct(dto productDTO) (catalog.Product, error) {
	region, err := enums.ParseRegion(dto.Region)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("product %q: bad region %q", dto.ID, dto.Region)
	}
	category := enums.CategoryKey(dto.Category)
	if !category.IsValid() {
		return catalog.Product{}, fmt.Errorf("product %q: bad category %q", dto.ID, dto.Category)
	}
	currency := enums.Currency(dto.Currency)
	if !currency.IsValid() {
		return catalog.Product{}, fmt.Errorf("product %q: bad currency %q", dto.ID, dto.Currency)
	}
	price, err := decimal.NewFromString(dto.Price)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("product %q: bad price %q", dto.ID, dto.Price)
	}

	title := catalog.Title{}
	for lang, text := range dto.Titles {
		l, err := enums.ParseLanguage(lang)
		if err != nil {
			continue
		}
		title[l] = text
	}
	if title[enums.LanguageEN] == "" {
		return catalog.Product{}, fmt.Errorf("product %q: missing english title", dto.ID)
	}

	return catalog.Product{
		ID:       dto.ID,
		Region:   region,
		Category: category,
		Title:    title,
		Price:    price,
		Currency: currency,
		Image:    dto.Image,
		IsNew:    dto.IsNew,
	}, nil
}
