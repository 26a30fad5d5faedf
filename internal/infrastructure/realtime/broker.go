package realtime

import (
	"context"
	"encoding/json"
)

// Delivery is an event addressed to one user, exchanged between nodes.
type Delivery struct {
	Origin         string          `json:"origin"`
	UserID         string          `json:"user_id"`
	ExcludeSession string          `json:"exclude_session,omitempty"`
	Payload        json.RawMessage `json:"payload"`
}

// Broker fans deliveries out to every node. Delivery is fire and forget.
type Broker interface {
	Publish(ctx context.Context, d Delivery) error
	// Subscribe calls handle for every delivery until ctx is done.
	Subscribe(ctx context.Context, handle func(Delivery)) error
}
