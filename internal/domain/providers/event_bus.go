package providers

import (
	"context"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// diagnosis events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.DiagnosisEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.DiagnosisEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for different event types
const (
	// EventChannelDiagnoses is the channel for all diagnosis updates
	EventChannelDiagnoses = "diagnosis:updates"

	// EventChannelCropPrefix is the prefix for crop-specific channels
	EventChannelCropPrefix = "crop:"

	// EventChannelCatalog is the channel for catalog sync notifications
	EventChannelCatalog = "catalog:updates"
)

// GetCropChannel returns the channel name for a specific crop
func GetCropChannel(cropID string) string {
	return EventChannelCropPrefix + cropID
}
