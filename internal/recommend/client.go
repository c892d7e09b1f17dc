package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	MinTopN = 1
	MaxTopN = 20
)

// CourseRecommendation is the collaborator's wire shape for one recommended
// course, already ordered by relevance.
type CourseRecommendation struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Hours       int     `json:"hours"`
	Score       float64 `json:"score"`
}

// Client calls the external recommendation service. The call is opaque: any
// failure is wrapped and reported by the caller as a generic failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Recommendations returns the top topN courses for a user. topN is clamped
// to [MinTopN, MaxTopN] before the call goes out.
func (c *Client) Recommendations(ctx context.Context, userID uint, topN int) ([]CourseRecommendation, error) {
	if topN < MinTopN {
		topN = MinTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}

	url := fmt.Sprintf("%s/users/%d/recommendations?top_n=%d", c.baseURL, userID, topN)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	var result []CourseRecommendation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
