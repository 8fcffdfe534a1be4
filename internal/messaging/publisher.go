package messaging

import (
	"context"
	"time"

	"github.com/pixelpepes/holderbot/internal/domain"
)

// RoleChangeEvent is the audit record of one attempted role mutation.
// Applied is false when the platform rejected the mutation; Error then
// carries the failure text.
type RoleChangeEvent struct {
	EventID    string            `json:"event_id"`
	RunID      string            `json:"run_id"`
	UserID     domain.UserID     `json:"user_id"`
	Collection string            `json:"collection"`
	RoleName   string            `json:"role_name"`
	Action     domain.RoleAction `json:"action"`
	Applied    bool              `json:"applied"`
	Error      *string           `json:"error,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Publisher defines the interface for publishing role-change audit events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishRoleChange publishes a role mutation audit event
	PublishRoleChange(ctx context.Context, event *RoleChangeEvent) error
	// Close closes the connection
	Close()
}
