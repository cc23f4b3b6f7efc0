package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client calls an external projection service for opening prices. The
// service estimates from historical statistics; the engine only consumes
// the resulting amount.
type Client struct {
	baseURL string
	client  *http.Client
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey: apiKey,
	}
}

type estimateResponse struct {
	Amount int64 `json:"amount"`
}

// Estimate fetches the estimated opening price for a player in a league.
func (c *Client) Estimate(ctx context.Context, playerID, leagueID uuid.UUID) (int64, error) {
	endpoint := fmt.Sprintf("%s/v1/leagues/%s/players/%s/opening-price", c.baseURL, leagueID, playerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("estimator returned status code: %d, response: %s", resp.StatusCode, string(body))
	}

	var parsed estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode estimate: %w", err)
	}
	return parsed.Amount, nil
}
