package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "progress.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	snap := s.Current()
	assert.True(t, snap.CurrentPayday.IsZero())
	assert.Equal(t, 0.0, snap.CurrentBalance)
	assert.Equal(t, 0, snap.PayPeriodCounter)
}

func TestStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	payday := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Save(Snapshot{
		CurrentPayday:    payday,
		CurrentBalance:   1820.55,
		PayPeriodCounter: 3,
	}))

	// reopen from disk
	s2, err := NewStore(path)
	require.NoError(t, err)

	snap := s2.Current()
	assert.True(t, snap.CurrentPayday.Equal(payday))
	assert.Equal(t, 1820.55, snap.CurrentBalance)
	assert.Equal(t, 3, snap.PayPeriodCounter)
	assert.False(t, snap.UpdatedAt.IsZero())
}

func TestStore_Advance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	first := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	snap, err := s.Advance(first, 900)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.PayPeriodCounter)

	snap, err = s.Advance(first.AddDate(0, 0, 14), 1150)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.PayPeriodCounter)
	assert.Equal(t, 1150.0, snap.CurrentBalance)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path)
	assert.ErrorContains(t, err, "parse data file")
}
