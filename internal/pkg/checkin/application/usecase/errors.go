package usecase

import (
	"time"

	"github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = shared.Persistence("checkin use case persistence error")

// resolveWeek maps an optional "YYYY-MM-DD" to the Monday of its week,
// defaulting to the current UTC week.
func resolveWeek(s string, now time.Time) (shared.Date, error) {
	if s == "" {
		return shared.WeekOf(now), nil
	}
	d, err := shared.ParseDate(s)
	if err != nil {
		return shared.Date{}, err
	}
	return shared.WeekOf(d.Time), nil
}
