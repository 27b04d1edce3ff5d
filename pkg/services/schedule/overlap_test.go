package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", at(7, 0), at(8, 0), at(9, 0), at(10, 0), false},
		{"adjacent is not overlap", at(7, 0), at(8, 0), at(8, 0), at(9, 0), false},
		{"adjacent reversed", at(8, 0), at(9, 0), at(7, 0), at(8, 0), false},
		{"partial overlap", at(7, 0), at(8, 30), at(8, 0), at(9, 0), true},
		{"containment", at(7, 0), at(12, 0), at(8, 0), at(9, 0), true},
		{"identical", at(7, 0), at(8, 0), at(7, 0), at(8, 0), true},
		{"one minute overlap", at(7, 0), at(8, 1), at(8, 0), at(9, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Symmetric by construction.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
