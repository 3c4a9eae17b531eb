package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trainhub/internal/pkg/config"
	"trainhub/internal/pkg/errs"
	"trainhub/internal/usecase/commands"
)

var ErrGeneratorDisabled = errs.New("cover image generation is not configured")

const maxResponseSize = 1 << 20 // 1MB

// HTTPGenerator calls the cover compositing service. It composes a cover from
// the bundle title, the primary goal and the component product images.
type HTTPGenerator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGenerator(cfg config.ImageGenConfig) commands.CoverImageGenerator {
	if cfg.BaseURL == "" {
		return &disabledGenerator{}
	}
	return &HTTPGenerator{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

type generateRequest struct {
	Title    string         `json:"title"`
	Goal     string         `json:"goal,omitempty"`
	Products []productImage `json:"products"`
}

type productImage struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

type generateResponse struct {
	URL string `json:"url"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, req commands.CoverRequest) (string, error) {
	payload := generateRequest{
		Title:    req.Title,
		Goal:     req.Goal,
		Products: make([]productImage, 0, len(req.Products)),
	}
	for _, p := range req.Products {
		payload.Products = append(payload.Products, productImage{Name: p.Name, ImageURL: p.ImageURL})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode cover request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/covers", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build cover request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "cover service request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", errs.Wrap(err, "failed to read cover response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("cover service returned status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errs.Wrap(err, "failed to decode cover response")
	}
	if out.URL == "" {
		return "", errs.New("cover service returned no image url")
	}
	return out.URL, nil
}

type disabledGenerator struct{}

func (d *disabledGenerator) Generate(context.Context, commands.CoverRequest) (string, error) {
	return "", ErrGeneratorDisabled
}
