package realtime

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/infrastructure/metrics"
	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

const (
	originClient = "client"
	originServer = "server"
	originPeer   = "peer"
)

// Relay routes events to user sockets on this node and, when a broker is
// configured, to the other nodes. It implements shared.Notifier.
type Relay struct {
	hub      *Hub
	partners shared.PartnerResolver
	broker   Broker
	nodeID   string
	logger   *zap.Logger
}

// NewRelay builds a relay. broker may be nil for a single node.
func NewRelay(hub *Hub, partners shared.PartnerResolver, broker Broker, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		hub:      hub,
		partners: partners,
		broker:   broker,
		nodeID:   uuid.NewString(),
		logger:   logger,
	}
}

var _ shared.Notifier = (*Relay)(nil)

// Hub returns the local connection registry.
func (r *Relay) Hub() *Hub { return r.hub }

// NotifyUser pushes a server event to every socket of userID.
func (r *Relay) NotifyUser(ctx context.Context, userID string, evt shared.Event) {
	payload, err := EncodeEvent(evt)
	if err != nil {
		r.logger.Warn("relay: encode event", zap.String("type", evt.Type), zap.Error(err))
		return
	}
	r.deliver(ctx, originServer, userID, "", payload)
}

// Forward relays a client envelope from conn to the sender's other sockets
// and to the partner's sockets. The sending socket never gets its own frame.
func (r *Relay) Forward(ctx context.Context, conn *Connection, env Envelope) {
	payload, err := env.Encode()
	if err != nil {
		_ = conn.Send(ErrorFrame("bad_request", "could not encode frame"))
		return
	}
	r.deliver(ctx, originClient, conn.UserID, conn.SessionID, payload)

	if r.partners == nil {
		return
	}
	ps, err := r.partners.PartnershipOf(ctx, conn.UserID)
	if err != nil {
		if !errors.Is(err, shared.ErrNoPartner) {
			r.logger.Warn("relay: partner lookup failed", zap.String("user_id", conn.UserID), zap.Error(err))
		}
		return
	}
	r.deliver(ctx, originClient, ps.PartnerID, "", payload)
}

// Run consumes deliveries published by other nodes until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	if r.broker == nil {
		<-ctx.Done()
		return nil
	}
	return r.broker.Subscribe(ctx, r.receive)
}

func (r *Relay) deliver(ctx context.Context, origin, userID, excludeSession string, payload []byte) {
	n := r.hub.SendToUser(userID, payload, excludeSession)
	metrics.RelayEvent(origin, n)

	if r.broker == nil {
		return
	}
	err := r.broker.Publish(ctx, Delivery{
		Origin:         r.nodeID,
		UserID:         userID,
		ExcludeSession: excludeSession,
		Payload:        payload,
	})
	if err != nil {
		r.logger.Warn("relay: publish failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (r *Relay) receive(d Delivery) {
	if d.Origin == r.nodeID {
		return
	}
	n := r.hub.SendToUser(d.UserID, d.Payload, d.ExcludeSession)
	metrics.RelayEvent(originPeer, n)
}
