package shared

import "context"

// Relay event types pushed to clients so they can refresh cached queries.
const (
	EventNewMessage            = "new_message"
	EventNewResponse           = "new_response"
	EventNewDirectMessage      = "new_direct_message"
	EventDirectMessagesRead    = "direct_messages_read"
	EventConflictThreadCreated = "conflict_thread_created"
	EventConflictMessage       = "conflict_message"
	EventConflictStatusChanged = "conflict_status_changed"
	EventJournalShared         = "journal_shared"
	EventNewMilestone          = "new_milestone"
	EventNewAppreciation       = "new_appreciation"
	EventCheckInShared         = "checkin_shared"
	EventExerciseProgress      = "exercise_progress"
	EventPartnerConnected      = "partner_connected"
	EventPartnerDisconnected   = "partner_disconnected"
	EventAvatarReady           = "avatar_ready"
)

// Event is the {type, data} envelope delivered over the relay.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Notifier pushes an event to every open socket of a user. Delivery is best
// effort: users without an open socket simply miss the event.
type Notifier interface {
	NotifyUser(ctx context.Context, userID string, evt Event)
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) NotifyUser(context.Context, string, Event) {}
