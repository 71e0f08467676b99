package port

import (
	"context"

	"launchpad/internal/core/domain"
)

// EventPublisher delivers committed events to downstream consumers. It is
// called after commit, so a failure never undoes the operation.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}
