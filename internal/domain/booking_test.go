package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func booking(resource, date, start, end string) Booking {
	return Booking{Resource: resource, Date: date, StartTime: start, EndTime: end}
}

func TestHasConflict_OverlapCases(t *testing.T) {
	existing := []Booking{booking("boardroom", "2024-01-10", "09:00", "10:00")}

	tests := []struct {
		name      string
		candidate Booking
		want      bool
	}{
		{"contains existing start", booking("boardroom", "2024-01-10", "08:30", "09:30"), true},
		{"contains existing end", booking("boardroom", "2024-01-10", "09:30", "10:30"), true},
		{"inside existing", booking("boardroom", "2024-01-10", "09:15", "09:45"), true},
		{"contains existing entirely", booking("boardroom", "2024-01-10", "08:00", "11:00"), true},
		{"identical interval", booking("boardroom", "2024-01-10", "09:00", "10:00"), true},
		{"touches existing end", booking("boardroom", "2024-01-10", "10:00", "11:00"), false},
		{"touches existing start", booking("boardroom", "2024-01-10", "08:00", "09:00"), false},
		{"well before", booking("boardroom", "2024-01-10", "07:00", "08:00"), false},
		{"well after", booking("boardroom", "2024-01-10", "11:00", "12:00"), false},
		{"other resource", booking("van-1", "2024-01-10", "09:00", "10:00"), false},
		{"other date", booking("boardroom", "2024-01-11", "09:00", "10:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(existing, tt.candidate))
		})
	}
}

func TestHasConflict_ZeroLengthCandidate(t *testing.T) {
	existing := []Booking{booking("boardroom", "2024-01-10", "09:00", "10:00")}

	// [09:30, 09:30) is empty; it cannot overlap anything.
	assert.False(t, HasConflict(existing, booking("boardroom", "2024-01-10", "09:30", "09:30")))
}

func TestHasConflict_InvertedCandidate(t *testing.T) {
	existing := []Booking{booking("boardroom", "2024-01-10", "08:00", "11:00")}

	assert.False(t, HasConflict(existing, booking("boardroom", "2024-01-10", "10:00", "09:00")))
}

func TestHasConflict_DegenerateExistingSkipped(t *testing.T) {
	existing := []Booking{
		booking("boardroom", "2024-01-10", "09:30", "09:30"),
		booking("boardroom", "2024-01-10", "11:00", "10:00"),
	}

	assert.False(t, HasConflict(existing, booking("boardroom", "2024-01-10", "09:00", "10:00")))
}

func TestHasConflict_UnparseableRowsSkipped(t *testing.T) {
	existing := []Booking{
		booking("boardroom", "2024-01-10", "9am", "10am"),
		booking("boardroom", "2024-01-10", "", ""),
		booking("boardroom", "2024-01-10", "13:00", "14:00"),
	}

	assert.False(t, HasConflict(existing, booking("boardroom", "2024-01-10", "09:00", "10:00")))
	assert.True(t, HasConflict(existing, booking("boardroom", "2024-01-10", "13:30", "14:30")))
}

func TestHasConflict_EmptyExisting(t *testing.T) {
	assert.False(t, HasConflict(nil, booking("boardroom", "2024-01-10", "09:00", "10:00")))
}
