package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, minute int) time.Time {
	return time.Date(2026, 9, 15, hour, minute, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "identical intervals",
			aStart: ts(10, 0), aEnd: ts(12, 0),
			bStart: ts(10, 0), bEnd: ts(12, 0),
			expected: true,
		},
		{
			name:   "partial overlap",
			aStart: ts(10, 0), aEnd: ts(12, 0),
			bStart: ts(11, 0), bEnd: ts(13, 0),
			expected: true,
		},
		{
			name:   "containment",
			aStart: ts(10, 0), aEnd: ts(14, 0),
			bStart: ts(11, 0), bEnd: ts(12, 0),
			expected: true,
		},
		{
			name:   "adjacent back to back",
			aStart: ts(10, 0), aEnd: ts(11, 0),
			bStart: ts(11, 0), bEnd: ts(12, 0),
			expected: false,
		},
		{
			name:   "adjacent reversed",
			aStart: ts(11, 0), aEnd: ts(12, 0),
			bStart: ts(10, 0), bEnd: ts(11, 0),
			expected: false,
		},
		{
			name:   "disjoint",
			aStart: ts(8, 0), aEnd: ts(9, 0),
			bStart: ts(12, 0), bEnd: ts(13, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, IntervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_DurationHours(t *testing.T) {
	b := &Booking{StartTime: ts(10, 0), EndTime: ts(13, 0)}
	assert.Equal(t, 3, b.DurationHours())
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, BookingStatus(valid), status)
	}

	for _, invalid := range []string{"", "PENDING", "done", "canceled"} {
		_, ok := ParseBookingStatus(invalid)
		assert.False(t, ok, "status %q should be rejected", invalid)
	}
}
