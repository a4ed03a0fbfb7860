package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/katiamach/simple-weather/internal/logger"
	"github.com/katiamach/simple-weather/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/favicon.png
var favicon []byte

// HTMLRenderer renders weather results as html pages.
type HTMLRenderer struct {
	weatherPage *template.Template
	errorPage   *template.Template
}

// New parses page templates and creates new HTMLRenderer.
func New() (*HTMLRenderer, error) {
	weather, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/weather.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse weather template: %w", err)
	}

	errTmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse error template: %w", err)
	}

	return &HTMLRenderer{
		weatherPage: weather.Lookup("weather.html"),
		errorPage:   errTmpl.Lookup("error.html"),
	}, nil
}

// RenderResult renders whichever part of the result is set.
func (hr *HTMLRenderer) RenderResult(w http.ResponseWriter, res *model.WeatherResult) {
	if res.Error != nil {
		hr.RenderError(w, res.Error.StatusCode, res.Error.Title)
		return
	}

	hr.RenderWeather(w, res.Weather)
}

// RenderError renders error page with the given status code.
func (hr *HTMLRenderer) RenderError(w http.ResponseWriter, statusCode int, title string) {
	hr.render(w, statusCode, hr.errorPage, &model.ErrorResult{StatusCode: statusCode, Title: title})
}

// RenderWeather renders a sentence about current weather.
func (hr *HTMLRenderer) RenderWeather(w http.ResponseWriter, weather *model.Weather) {
	hr.render(w, http.StatusOK, hr.weatherPage, weather)
}

func (hr *HTMLRenderer) render(w http.ResponseWriter, code int, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		logger.Error(fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(buf.Bytes())
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// FaviconHandler serves the page icon.
func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(favicon)
	if err != nil {
		logger.Error(fmt.Errorf("can't write favicon: %w", err))
	}
}
