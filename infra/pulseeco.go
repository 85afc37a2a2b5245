package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/airpulse-io/airpulse/config"
	"github.com/airpulse-io/airpulse/entity"
)

// PulseEcoClient fetches current sensor data from the upstream provider.
// Each city has its own subdomain: https://<city>.<domain>/rest/current
type PulseEcoClient struct {
	httpClient *http.Client
	domain     string
	username   string
	password   string
}

func InitPulseEcoClient(cfg *config.EnvConfig) *PulseEcoClient {
	return &PulseEcoClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		domain:     cfg.PulseEco.Domain,
		username:   cfg.PulseEco.Username,
		password:   cfg.PulseEco.Password,
	}
}

func (c *PulseEcoClient) baseURL(city string) string {
	return fmt.Sprintf("https://%s.%s/rest", strings.ToLower(city), c.domain)
}

// CurrentData returns the latest reading per sensor/metric for one city.
func (c *PulseEcoClient) CurrentData(ctx context.Context, city string) ([]entity.RawReading, error) {
	url := c.baseURL(city) + "/current"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for city %s: %w", city, err)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current data for city %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned HTTP %d for city %s", resp.StatusCode, city)
	}

	var readings []entity.RawReading
	if err := json.NewDecoder(resp.Body).Decode(&readings); err != nil {
		return nil, fmt.Errorf("failed to decode current data for city %s: %w", city, err)
	}

	return readings, nil
}
