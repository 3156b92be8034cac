package helpers

import (
	helpercfg "helperkit/core/helpers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new helpers feature.
func NewFeature(cfg helpercfg.Config, logger *zap.Logger) (*Feature, error) {
	svc, err := NewService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{service: svc, handler: NewHandler(svc)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "helpers"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Close releases the feature's background timers.
func (f *Feature) Close() {
	f.service.Close()
}
