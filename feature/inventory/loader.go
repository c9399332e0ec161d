package inventory

import (
	"stock-check/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature around an operator session.
func NewFeature(sess *session.Context, logger *zap.Logger, maxUploadBytes int) *Feature {
	svc := NewService(sess, logger)
	return &Feature{service: svc, handler: NewHandler(svc, maxUploadBytes)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
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
