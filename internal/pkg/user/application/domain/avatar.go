package user

import "time"

// Avatar is a generated profile image.
type Avatar struct {
	UserID      string
	ContentType string
	Data        []byte
	Prompt      string
	CreatedAt   time.Time
}
