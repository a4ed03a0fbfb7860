package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/katiamach/simple-weather/internal/model"
	"github.com/katiamach/simple-weather/internal/service"
	"github.com/katiamach/simple-weather/internal/view"

	mock "github.com/katiamach/simple-weather/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func TestGetWeatherHandler(t *testing.T) {
	weather := &model.Weather{Temperature: 16, IsSunny: true, City: "Paris"}

	cases := []struct {
		name            string
		target          string
		expectedQuery   *model.WeatherQuery
		serviceWeather  *model.Weather
		serviceErr      error
		isServiceCalled bool
		expectedStatus  int
		expectedTitle   string
	}{
		{
			name:           "no location",
			target:         "/",
			expectedStatus: http.StatusBadRequest,
			expectedTitle:  "Please provide a location",
		},
		{
			name:           "empty location",
			target:         "/?location=&units=celsius",
			expectedStatus: http.StatusBadRequest,
			expectedTitle:  "Please provide a location",
		},
		{
			name:            "upstream not found",
			target:          "/?location=Atlantis",
			expectedQuery:   &model.WeatherQuery{Location: "Atlantis", Units: model.Imperial},
			serviceErr:      &service.UpstreamError{StatusCode: http.StatusNotFound},
			isServiceCalled: true,
			expectedStatus:  http.StatusNotFound,
			expectedTitle:   "Failed to load weather for Atlantis",
		},
		{
			name:            "upstream unauthorized",
			target:          "/?location=Paris&units=celsius",
			expectedQuery:   &model.WeatherQuery{Location: "Paris", Units: model.Metric},
			serviceErr:      &service.UpstreamError{StatusCode: http.StatusUnauthorized},
			isServiceCalled: true,
			expectedStatus:  http.StatusUnauthorized,
			expectedTitle:   "Failed to load weather for Paris",
		},
		{
			name:            "service error",
			target:          "/?location=Paris",
			expectedQuery:   &model.WeatherQuery{Location: "Paris", Units: model.Imperial},
			serviceErr:      errTest,
			isServiceCalled: true,
			expectedStatus:  http.StatusInternalServerError,
			expectedTitle:   "Internal Server Error",
		},
		{
			name:            "ok celsius",
			target:          "/?location=Paris&units=celsius",
			expectedQuery:   &model.WeatherQuery{Location: "Paris", Units: model.Metric},
			serviceWeather:  weather,
			isServiceCalled: true,
			expectedStatus:  http.StatusOK,
		},
		{
			name:            "ok fahrenheit",
			target:          "/?location=New+York&units=fahrenheit",
			expectedQuery:   &model.WeatherQuery{Location: "New York", Units: model.Imperial},
			serviceWeather:  weather,
			isServiceCalled: true,
			expectedStatus:  http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			mockRenderer := mock.NewMockRenderer(ctrl)
			s := NewWeatherServer(mockWeatherService, mockRenderer)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			if tc.isServiceCalled {
				mockWeatherService.EXPECT().
					GetWeather(gomock.Any(), tc.expectedQuery).
					Return(tc.serviceWeather, tc.serviceErr)
			}

			if tc.expectedStatus == http.StatusOK {
				mockRenderer.EXPECT().RenderWeather(w, tc.serviceWeather)
			} else {
				mockRenderer.EXPECT().RenderError(w, tc.expectedStatus, tc.expectedTitle)
			}

			s.GetWeatherHandler(w, r)
		})
	}
}

func TestGetWeatherHandlerRendersPage(t *testing.T) {
	renderer, err := view.New()
	assert.Nil(t, err)

	cases := []struct {
		name           string
		target         string
		serviceWeather *model.Weather
		serviceErr     error
		expectedStatus int
		expected       []string
		notExpected    []string
	}{
		{
			name:           "missing location",
			target:         "/?units=celsius",
			expectedStatus: http.StatusBadRequest,
			expected:       []string{"400", "Please provide a location"},
		},
		{
			name:           "sunny",
			target:         "/?location=Paris&units=celsius",
			serviceWeather: &model.Weather{Temperature: 16, IsSunny: true, City: "Paris"},
			expectedStatus: http.StatusOK,
			expected:       []string{"16&deg;", "sunny", "Paris", `class="container sunny"`},
		},
		{
			name:           "cloudy",
			target:         "/?location=Paris",
			serviceWeather: &model.Weather{Temperature: 60, IsSunny: false, City: "Paris"},
			expectedStatus: http.StatusOK,
			expected:       []string{"60&deg;", "cloudy", "Paris"},
			notExpected:    []string{">sunny<", "container sunny"},
		},
		{
			name:           "upstream error",
			target:         "/?location=Atlantis",
			serviceErr:     &service.UpstreamError{StatusCode: http.StatusNotFound},
			expectedStatus: http.StatusNotFound,
			expected:       []string{"404", "Failed to load weather for Atlantis"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockWeatherService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockWeatherService, renderer)

			mockWeatherService.EXPECT().
				GetWeather(gomock.Any(), gomock.Any()).
				Return(tc.serviceWeather, tc.serviceErr).
				AnyTimes()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.GetWeatherHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, e := range tc.expected {
				assert.Contains(t, w.Body.String(), e)
			}
			for _, e := range tc.notExpected {
				assert.NotContains(t, w.Body.String(), e)
			}
		})
	}
}
