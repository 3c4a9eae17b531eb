package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseSize bounds what we read from the storefront API (2MB).
const maxResponseSize = 2 * 1024 * 1024

var ErrInvalidConfig = errors.New("storefront: invalid configuration")

type StorefrontConfig struct {
	BaseURL        string
	ShopURL        string
	AccessToken    string
	TimeoutSeconds int
}

func (c *StorefrontConfig) Validate() error {
	if c.BaseURL == "" || c.ShopURL == "" || c.AccessToken == "" {
		return ErrInvalidConfig
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return nil
}

// StorefrontAdapter implements Gateway against the commerce platform's admin
// REST API. All mutations address resources by the platform-assigned id, which
// is what makes Resync idempotent on their side.
type StorefrontAdapter struct {
	config     *StorefrontConfig
	httpClient *http.Client
}

func NewStorefrontAdapter(config *StorefrontConfig) (*StorefrontAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &StorefrontAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

type listingItemPayload struct {
	RemoteRef int64  `json:"remote_ref"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type publishPayload struct {
	Title       string               `json:"title"`
	Description string               `json:"body_html"`
	Price       string               `json:"price"`
	ImageURL    string               `json:"image_url,omitempty"`
	Components  []listingItemPayload `json:"components"`
}

type publishResponse struct {
	Product struct {
		ID       int64 `json:"id"`
		Variants []struct {
			ID int64 `json:"id"`
		} `json:"variants"`
	} `json:"product"`
}

func (a *StorefrontAdapter) Publish(ctx context.Context, spec ListingSpec) (RemoteRefs, error) {
	payload := publishPayload{
		Title:       spec.Title,
		Description: spec.Description,
		Price:       spec.Price.StringFixed(2),
		ImageURL:    spec.ImageURL,
		Components:  make([]listingItemPayload, 0, len(spec.Items)),
	}
	for _, item := range spec.Items {
		payload.Components = append(payload.Components, listingItemPayload{
			RemoteRef: item.RemoteRef,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}

	body, err := a.doRequest(ctx, http.MethodPost, "/admin/products.json", payload)
	if err != nil {
		return RemoteRefs{}, err
	}

	var resp publishResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return RemoteRefs{}, NewError(KindRejected, "unparseable publish response", err)
	}
	if resp.Product.ID == 0 || len(resp.Product.Variants) == 0 {
		return RemoteRefs{}, NewError(KindRejected, "publish response missing product or variant id", nil)
	}
	return RemoteRefs{
		ProductRef: resp.Product.ID,
		VariantRef: resp.Product.Variants[0].ID,
	}, nil
}

type resyncPayload struct {
	Title       string `json:"title"`
	Description string `json:"body_html"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
	Status      string `json:"status"`
}

func (a *StorefrontAdapter) Resync(ctx context.Context, refs RemoteRefs, update ListingUpdate) error {
	status := "draft"
	if update.Active {
		status = "active"
	}
	payload := resyncPayload{
		Title:       update.Title,
		Description: update.Description,
		Price:       update.Price.StringFixed(2),
		ImageURL:    update.ImageURL,
		Status:      status,
	}

	path := fmt.Sprintf("/admin/products/%d.json?variant=%d", refs.ProductRef, refs.VariantRef)
	_, err := a.doRequest(ctx, http.MethodPut, path, payload)
	return err
}

type metafieldsResponse struct {
	Metafields []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"metafields"`
}

func (a *StorefrontAdapter) FetchMetadata(ctx context.Context, remoteProductRef int64) (Metadata, error) {
	path := fmt.Sprintf("/admin/products/%d/metafields.json", remoteProductRef)
	body, err := a.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp metafieldsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewError(KindRejected, "unparseable metafields response", err)
	}
	meta := make(Metadata, len(resp.Metafields))
	for _, f := range resp.Metafields {
		meta[f.Key] = f.Value
	}
	return meta, nil
}

// CheckoutURL builds the permalink that preloads the bundle's variant into the
// platform cart.
func (a *StorefrontAdapter) CheckoutURL(refs RemoteRefs) string {
	return fmt.Sprintf("%s/cart/%d:1", strings.TrimRight(a.config.ShopURL, "/"), refs.VariantRef)
}

func (a *StorefrontAdapter) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, NewError(KindRejected, "failed to encode request", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	url := strings.TrimRight(a.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, NewError(KindRejected, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Storefront-Access-Token", a.config.AccessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, NewError(KindTransient, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewError(KindTransient, "failed to read response", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, NewError(KindTransient, fmt.Sprintf("platform returned %d", resp.StatusCode), nil)
	default:
		return nil, NewError(KindRejected, fmt.Sprintf("platform rejected request with %d: %s", resp.StatusCode, truncate(body, 256)), nil)
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
