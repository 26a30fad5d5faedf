package partner

import "time"

// Partnership links two accounts. A user belongs to at most one.
type Partnership struct {
	ID        string
	User1ID   string
	User2ID   string
	CreatedAt time.Time
}

// Other returns the member that is not userID.
func (p Partnership) Other(userID string) string {
	if p.User1ID == userID {
		return p.User2ID
	}
	return p.User1ID
}

// Has reports whether userID is a member.
func (p Partnership) Has(userID string) bool {
	return p.User1ID == userID || p.User2ID == userID
}

// Profile is the public view of the partner's account.
type Profile struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

// Partner is what a user sees about their partnership.
type Partner struct {
	PartnershipID string    `json:"partnership_id"`
	Since         time.Time `json:"since"`
	Partner       Profile   `json:"partner"`
}
