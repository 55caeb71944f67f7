package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cvmatch/internal/api"
	"cvmatch/internal/config"
)

// App is the dependency container for the CLI application
type App struct {
	Config     *config.Config
	HTTPClient *http.Client
	API        *api.Client
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: time.Duration(config.AppConfig.TimeoutSeconds) * time.Second,
	}

	return &App{
		Config:     config.AppConfig,
		HTTPClient: httpClient,
		API:        api.NewClient(config.AppConfig.APIBaseURL, httpClient),
	}, nil
}
