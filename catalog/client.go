package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/Arjun-733/OfferSphere/metrics"
	"github.com/Arjun-733/OfferSphere/models"
	"github.com/Arjun-733/OfferSphere/utils"
)

// Client fetches raw offer records from the collaborator offers API and
// normalizes them into the canonical Offer shape. A rate limiter keeps
// manual refresh triggers from hammering the upstream service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the offers API at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 2),
	}
}

// offersEnvelope covers the response shapes the upstream has been seen to use:
// a bare array, {"offers": [...]} or {"data": [...]}.
type offersEnvelope struct {
	Offers []json.RawMessage `json:"offers"`
	Data   []json.RawMessage `json:"data"`
}

// FetchOffers retrieves and normalizes the full offer list. Individual records
// that cannot be normalized are logged and skipped; only transport or
// payload-level failures produce an error.
func (c *Client) FetchOffers(ctx context.Context) ([]*models.Offer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build offers request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("offers API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("offers API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read offers response: %w", err)
	}

	raws, err := decodeOfferList(body)
	if err != nil {
		return nil, err
	}

	offers := make([]*models.Offer, 0, len(raws))
	for _, raw := range raws {
		offer, err := models.ParseOffer(raw)
		if err != nil {
			utils.LogError("Skipping offer record: %v", err)
			metrics.SkippedOffers.Inc()
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func decodeOfferList(body []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var envelope offersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed offers payload: %w", err)
	}
	if envelope.Offers != nil {
		return envelope.Offers, nil
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	return nil, fmt.Errorf("offers payload has no recognizable offer list")
}
