package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/katiamach/simple-weather/internal/config"
	"github.com/katiamach/simple-weather/internal/logger"
	"github.com/katiamach/simple-weather/internal/model"
)

// UpstreamError is returned when OpenWeatherMap responds with non-success status.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openweathermap responded with status %d", e.StatusCode)
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	client *http.Client
	apiURL string
	apiKey string
}

// New creates new WeatherService.
func New(cfg *config.Config) *WeatherService {
	return &WeatherService{
		client: &http.Client{},
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
	}
}

// GetWeather loads current weather for the given location from OpenWeatherMap.
func (ws *WeatherService) GetWeather(ctx context.Context, query *model.WeatherQuery) (*model.Weather, error) {
	params := url.Values{}
	params.Set("q", query.Location)
	params.Set("units", string(query.Units))
	params.Set("appid", ws.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := ws.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather for the given location: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("openweathermap responded", map[string]interface{}{
		"location": query.Location,
		"units":    query.Units,
		"status":   resp.StatusCode,
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var res model.OpenWeatherMapResponse
	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	weather, err := res.ToWeather()
	if err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return weather, nil
}
