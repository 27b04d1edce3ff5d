package schedule

import (
	"testing"
	"time"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)

func mondaySchedule(start, end string) *domain.WorkSchedule {
	return &domain.WorkSchedule{
		Days:      []time.Weekday{time.Monday},
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindSlot_MorningFreeBeforeWork(t *testing.T) {
	// 07:00-08:00 ends before a 09:00 work start, so the first anchor wins.
	got, err := FindSlot(monday, 1, mondaySchedule("09:00", "17:00"))

	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestFindSlot_FallsThroughToEvening(t *testing.T) {
	// Work 07:00-17:00 covers the 07:00 and 12:00 anchors; 18:00 is free.
	got, err := FindSlot(monday, 1, mondaySchedule("07:00", "17:00"))

	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
}

func TestFindSlot_AllAnchorsBlocked(t *testing.T) {
	// Work 07:00-19:00 swallows every anchor: 07:00 and 12:00 start inside,
	// and an hour from 18:00 both starts and ends inside.
	_, err := FindSlot(monday, 1, mondaySchedule("07:00", "19:00"))

	assert.ErrorIs(t, err, ErrNoSlot)
}

func TestFindSlot_EndInstantInsideWorkBlocksAnchor(t *testing.T) {
	// Work starts at 08:00; an hour from 07:00 ends exactly at the start
	// bound, which counts as inside work (inclusive bounds).
	got, err := FindSlot(monday, 1, mondaySchedule("08:00", "16:00"))

	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
}

func TestFindSlot_InactiveWeekday(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	got, err := FindSlot(tuesday, 1, mondaySchedule("07:00", "19:00"))

	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
}

func TestFindSlot_NoSchedule(t *testing.T) {
	got, err := FindSlot(monday, 8, nil)

	require.NoError(t, err)
	assert.Equal(t, 7, got.Hour())
}

func TestInsideWork_InclusiveBounds(t *testing.T) {
	ws := mondaySchedule("09:00", "17:00")

	assert.True(t, InsideWork(monday.Add(9*time.Hour), ws))
	assert.True(t, InsideWork(monday.Add(17*time.Hour), ws))
	assert.False(t, InsideWork(monday.Add(17*time.Hour+time.Minute), ws))
	assert.False(t, InsideWork(monday.Add(8*time.Hour+59*time.Minute), ws))
}
