package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/simple-weather/internal/config"
	"github.com/katiamach/simple-weather/internal/logger"
	"github.com/katiamach/simple-weather/internal/service"
	"github.com/katiamach/simple-weather/internal/transport/rest/handler"
	"github.com/katiamach/simple-weather/internal/view"
)

// RunAPI runs weather page server.
func RunAPI(cfg *config.Config) error {
	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	logger.Info(fmt.Sprintf("Starting weather page at port %s", port))

	return http.ListenAndServe(":"+port, router)
}

// NewRouter wires weather page handlers and middlewares.
func NewRouter(cfg *config.Config) (http.Handler, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	server := handler.NewWeatherServer(service.New(cfg), renderer)

	r := mux.NewRouter()

	r.HandleFunc("/", server.GetWeatherHandler).Methods("GET")
	r.HandleFunc("/favicon.png", view.FaviconHandler).Methods("GET")

	options := setupCorsOptions(cfg.Origin)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(logger.Logger()))

	return handlers.CombinedLoggingHandler(logger.Writer(), recovery(handlers.CORS(options...)(r))), nil
}
