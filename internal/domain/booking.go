package domain

import "time"

const (
	// Wire formats for booking dates and times. Values are zero-padded so
	// the stored files stay lexically sortable.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Booking struct {
	ID         string `json:"id"`
	Resource   string `json:"resource"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	User       string `json:"user"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Purpose    string `json:"purpose"`
	Invitees   string `json:"invitees"`
}

type CreateBookingInput struct {
	ID         string
	Resource   string
	Date       string
	StartTime  string
	EndTime    string
	User       string
	Department string
	Type       string
	Purpose    string
	Invitees   string
}

type UpdateBookingInput struct {
	Resource   *string
	Date       *string
	StartTime  *string
	EndTime    *string
	User       *string
	Department *string
	Type       *string
	Purpose    *string
	Invitees   *string
}

// HasConflict reports whether the candidate booking overlaps any existing
// booking for the same resource on the same date. Intervals are half-open:
// a booking ending at 11:00 does not collide with one starting at 11:00.
// Times are parsed before comparison; existing rows whose times do not
// parse are skipped, and zero-length or inverted intervals never conflict.
func HasConflict(existing []Booking, candidate Booking) bool {
	s, err := time.Parse(TimeLayout, candidate.StartTime)
	if err != nil {
		return false
	}
	e, err := time.Parse(TimeLayout, candidate.EndTime)
	if err != nil {
		return false
	}

	for _, b := range existing {
		if b.Resource != candidate.Resource || b.Date != candidate.Date {
			continue
		}
		bs, err := time.Parse(TimeLayout, b.StartTime)
		if err != nil {
			continue
		}
		be, err := time.Parse(TimeLayout, b.EndTime)
		if err != nil {
			continue
		}
		if overlaps(s, e, bs, be) {
			return true
		}
	}

	return false
}

func overlaps(s, e, bs, be time.Time) bool {
	if !e.After(s) || !be.After(bs) {
		return false
	}
	return bs.Before(e) && be.After(s)
}
