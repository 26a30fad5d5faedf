package shared

import "context"

// ErrNoPartner is returned when a feature needs a linked partner and the
// user has none.
var ErrNoPartner = Conflict("partner: no partner linked to this account")

// Partnership is the cross-context view of a couple: the partnership id and
// the id of the other member, as seen from the requesting user.
type Partnership struct {
	ID        string
	PartnerID string
}

// PartnerResolver looks up the partnership of a user. Implementations return
// ErrNoPartner when the user is not linked.
type PartnerResolver interface {
	PartnershipOf(ctx context.Context, userID string) (Partnership, error)
}

// NotifyPartner sends evt to the partner of userID when one exists. Lookup
// failures are dropped; events are best effort.
func NotifyPartner(ctx context.Context, partners PartnerResolver, notifier Notifier, userID string, evt Event) {
	ps, err := partners.PartnershipOf(ctx, userID)
	if err != nil {
		return
	}
	notifier.NotifyUser(ctx, ps.PartnerID, evt)
}

// RequirePartnership resolves the partnership of userID, reporting
// ErrNoPartner as is and wrapping other failures with sentinel.
func RequirePartnership(ctx context.Context, partners PartnerResolver, sentinel error, userID string) (Partnership, error) {
	ps, err := partners.PartnershipOf(ctx, userID)
	if err != nil {
		return Partnership{}, WrapPersistence(sentinel, err)
	}
	return ps, nil
}
