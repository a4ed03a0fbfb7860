package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/katiamach/simple-weather/internal/logger"
	"github.com/katiamach/simple-weather/internal/model"
	"github.com/katiamach/simple-weather/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go

const noLocationTitle = "Please provide a location"

var errNoLocation = errors.New("location parameter not provided in query")

// WeatherService provides weather service methods.
type WeatherService interface {
	GetWeather(ctx context.Context, query *model.WeatherQuery) (*model.Weather, error)
}

// Renderer displays weather pages.
type Renderer interface {
	RenderError(w http.ResponseWriter, statusCode int, title string)
	RenderWeather(w http.ResponseWriter, weather *model.Weather)
}

// WeatherServer is a server for weather page requests.
type WeatherServer struct {
	service  WeatherService
	renderer Renderer
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService, renderer Renderer) *WeatherServer {
	return &WeatherServer{service, renderer}
}

// GetWeatherHandler handles weather page request.
func (s *WeatherServer) GetWeatherHandler(w http.ResponseWriter, r *http.Request) {
	query, err := validateQueryParams(r.URL.Query())
	if err != nil {
		logger.Error(err)
		s.renderer.RenderError(w, http.StatusBadRequest, noLocationTitle)
		return
	}

	weather, err := s.service.GetWeather(r.Context(), query)

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.Error(fmt.Errorf("failed to load weather for %s: %w", query.Location, err))
		s.renderer.RenderError(w, upstreamErr.StatusCode, fmt.Sprintf("Failed to load weather for %s", query.Location))
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get weather: %v", err))
		s.renderer.RenderError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.renderer.RenderWeather(w, weather)
}

func validateQueryParams(params url.Values) (*model.WeatherQuery, error) {
	location := params.Get("location")
	if location == "" {
		return nil, errNoLocation
	}

	return &model.WeatherQuery{
		Location: location,
		Units:    model.UnitsFromQuery(params.Get("units")),
	}, nil
}
