package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is a Riot Games API client with basic rate limiting.
type APIClient struct {
	apiKey     string
	httpClient *http.Client

	// BaseURL overrides regional routing when set. Used by tests.
	BaseURL string

	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewClient creates a new Riot API client.
func NewClient(apiKey string) *APIClient {
	return &APIClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Development keys allow 20 requests per second.
		minInterval: 50 * time.Millisecond,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

func (c *APIClient) clusterURL(platform string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", ClusterFor(platform))
}

func (c *APIClient) platformURL(platform string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", platform)
}

// doRequest performs an HTTP request with rate limiting and the API key header.
func (c *APIClient) doRequest(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < c.minInterval {
		time.Sleep(c.minInterval - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()

	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Wait and retry once on a 429.
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		log.Warn("Rate limited by Riot API, retrying once", "url", req.URL.Path)
		time.Sleep(1 * time.Second)
		return c.httpClient.Do(req)
	}

	return resp, nil
}

// get performs a GET request and decodes the JSON response into result.
func (c *APIClient) get(ctx context.Context, endpoint string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("riot api error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetAccountByRiotID retrieves account information by riot id (game name + tag line).
func (c *APIClient) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.clusterURL(""), url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, endpoint, &account); err != nil {
		return nil, fmt.Errorf("failed to get account by riot id: %w", err)
	}
	if account.PUUID == "" {
		return nil, fmt.Errorf("account %s#%s not found", gameName, tagLine)
	}
	return &account, nil
}

// GetSummonerByPUUID retrieves summoner information from the platform shard.
func (c *APIClient) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error) {
	endpoint := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.platformURL(platform), puuid)

	var summoner Summoner
	if err := c.get(ctx, endpoint, &summoner); err != nil {
		return nil, fmt.Errorf("failed to get summoner: %w", err)
	}
	if summoner.ID == "" {
		return nil, fmt.Errorf("summoner for puuid %s not found on %s", puuid, platform)
	}
	return &summoner, nil
}

// GetMatchIDs retrieves the most recent match ids for a player, newest first.
func (c *APIClient) GetMatchIDs(ctx context.Context, platform, puuid string, count int) ([]string, error) {
	if count <= 0 {
		count = 1
	}
	if count > 100 {
		count = 100
	}

	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?count=%d",
		c.clusterURL(platform), puuid, count)

	var matchIDs []string
	if err := c.get(ctx, endpoint, &matchIDs); err != nil {
		return nil, fmt.Errorf("failed to get match ids: %w", err)
	}
	return matchIDs, nil
}

// GetMatch retrieves detailed match information.
func (c *APIClient) GetMatch(ctx context.Context, platform, matchID string) (*Match, error) {
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.clusterURL(platform), matchID)

	var match Match
	if err := c.get(ctx, endpoint, &match); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &match, nil
}
