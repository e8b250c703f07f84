package records

import (
	"context"
	"time"
)

// Record is one swim record as served to clients.
//
// The handler forwards extractor output verbatim; nothing in the HTTP
// layer inspects or validates these fields.
type Record struct {
	// Course the record was swum in: SCY, SCM or LCM.
	Course string `json:"course"`

	// AgeGroup is the age bracket the record belongs to.
	// Example: "11-12", "Open"
	AgeGroup string `json:"age_group"`

	// Sex is "M", "F" or "X" (mixed relays).
	Sex string `json:"sex"`

	// Distance in the course's native unit (yards for SCY, meters otherwise).
	Distance int `json:"distance"`

	// Stroke is the event stroke.
	// Example: "Free", "Back", "Breast", "Fly", "IM"
	Stroke string `json:"stroke"`

	// Time is the record time as recorded, e.g. "1:02.45".
	Time string `json:"time"`

	// Holder is the name of the record holder.
	Holder string `json:"holder"`

	// Club the holder represented when the record was set.
	Club string `json:"club,omitempty"`

	// SetAt is the date the record was set.
	SetAt time.Time `json:"set_at"`
}

// Extractor is the record lookup backend. Implementations own the actual
// query; callers treat the result as opaque and pass it through.
type Extractor interface {
	Extract(ctx context.Context, course string) ([]Record, error)
}
