package model

import (
	"errors"
	"fmt"
	"math"
)

// SunnyThreshold is the cloud coverage percentage starting from which the sky is considered cloudy.
const SunnyThreshold = 20

// Units are measurement units understood by OpenWeatherMap.
type Units string

// Supported units.
const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// UnitsFromQuery maps the units query parameter to upstream units.
// Only "celsius" selects metric units, everything else falls back to imperial.
func UnitsFromQuery(v string) Units {
	if v == "celsius" {
		return Metric
	}

	return Imperial
}

// WeatherQuery contains weather request parameters.
type WeatherQuery struct {
	Location string
	Units    Units
}

// Weather is current weather ready to be displayed.
type Weather struct {
	Temperature int
	IsSunny     bool
	City        string
}

// ErrorResult describes a failed weather request.
type ErrorResult struct {
	StatusCode int
	Title      string
}

// WeatherResult holds either an error or weather, never both.
type WeatherResult struct {
	Error   *ErrorResult
	Weather *Weather
}

// NewErrorResult creates failed WeatherResult.
func NewErrorResult(statusCode int, title string) *WeatherResult {
	return &WeatherResult{Error: &ErrorResult{StatusCode: statusCode, Title: title}}
}

// NewWeatherResult creates successful WeatherResult.
func NewWeatherResult(w *Weather) *WeatherResult {
	return &WeatherResult{Weather: w}
}

// ErrIncompleteResponse is returned when OpenWeatherMap response lacks a field we display.
var ErrIncompleteResponse = errors.New("incomplete openweathermap response")

// OpenWeatherMapResponse is the part of OpenWeatherMap current weather response we use.
// Fields are pointers so that missing values can be told apart from zeros.
type OpenWeatherMapResponse struct {
	Name   *string     `json:"name"`
	Main   *MainInfo   `json:"main"`
	Clouds *CloudsInfo `json:"clouds"`
}

// MainInfo contains main weather parameters.
type MainInfo struct {
	Temp *float64 `json:"temp"`
}

// CloudsInfo contains cloudiness in percent.
type CloudsInfo struct {
	All *float64 `json:"all"`
}

// ToWeather converts upstream response into displayable weather.
func (r *OpenWeatherMapResponse) ToWeather() (*Weather, error) {
	switch {
	case r.Main == nil || r.Main.Temp == nil:
		return nil, fmt.Errorf("%w: main.temp is missing", ErrIncompleteResponse)
	case r.Clouds == nil || r.Clouds.All == nil:
		return nil, fmt.Errorf("%w: clouds.all is missing", ErrIncompleteResponse)
	case r.Name == nil:
		return nil, fmt.Errorf("%w: name is missing", ErrIncompleteResponse)
	}

	return &Weather{
		Temperature: RoundTemperature(*r.Main.Temp),
		IsSunny:     *r.Clouds.All < SunnyThreshold,
		City:        *r.Name,
	}, nil
}

// RoundTemperature rounds to the nearest integer, halves are rounded up (-2.5 becomes -2).
func RoundTemperature(t float64) int {
	f := math.Floor(t)
	if t-f >= 0.5 {
		f++
	}

	return int(f)
}
