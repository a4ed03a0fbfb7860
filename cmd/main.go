package main

import (
	"fmt"

	"github.com/katiamach/simple-weather/internal/api"
	"github.com/katiamach/simple-weather/internal/config"
	"github.com/katiamach/simple-weather/internal/logger"
)

func main() {
	cfg := config.Load()

	err := logger.SetLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal(fmt.Errorf("invalid log level: %v", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather page: %v", err))
	}
}
