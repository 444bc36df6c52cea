package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infoline/infoline-api/status"
)

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time { return f.at }

var testApp = status.AppInfo{
	Name:        "infoline-api",
	Version:     "1.0.0",
	Environment: "test",
}

func testReporter() *status.Reporter {
	clock := fixedClock{at: time.Date(2026, 8, 25, 14, 30, 5, 0, time.Local)}
	return status.NewReporter(testApp, clock)
}

func TestSnapshot(t *testing.T) {
	r := testReporter()

	snap, err := r.Snapshot(90_000, 8<<30, 4<<30)
	require.NoError(t, err)

	assert.Equal(t, "infoline-api", snap.Application)
	assert.Equal(t, "1.0.0", snap.Version)
	assert.Equal(t, "test", snap.Environment)
	assert.Equal(t, "2026-08-25T14:30:05", snap.Timestamp)
	assert.Equal(t, "1 minutes, 30 seconds", snap.Uptime)
	assert.Equal(t, "8.0 GB", snap.MemoryTotal)
	assert.Equal(t, "4.0 GB", snap.MemoryFree)
	assert.Equal(t, "4.0 GB", snap.MemoryUsed)
}

// Used memory is computed on raw bytes before formatting: 1536 - 512 = 1024,
// not a difference of the rounded strings.
func TestSnapshotUsedComputedOnRawBytes(t *testing.T) {
	r := testReporter()

	snap, err := r.Snapshot(0, 1536, 512)
	require.NoError(t, err)

	assert.Equal(t, "1.5 KB", snap.MemoryTotal)
	assert.Equal(t, "512 B", snap.MemoryFree)
	assert.Equal(t, "1.0 KB", snap.MemoryUsed)
}

func TestSnapshotDeterministic(t *testing.T) {
	r := testReporter()

	first, err := r.Snapshot(3_660_000, 2048, 1024)
	require.NoError(t, err)
	second, err := r.Snapshot(3_660_000, 2048, 1024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSnapshotRejectsFreeAboveTotal(t *testing.T) {
	r := testReporter()

	cases := []struct {
		total, free uint64
	}{
		{0, 1},
		{1024, 1025},
		{1 << 30, 1<<30 + 1},
	}
	for _, tc := range cases {
		_, err := r.Snapshot(0, tc.total, tc.free)
		require.Error(t, err)
		assert.ErrorIs(t, err, status.ErrInvalidArgument)
	}
}

func TestSnapshotRejectsNegativeUptime(t *testing.T) {
	r := testReporter()

	_, err := r.Snapshot(-500, 2048, 1024)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
}

func TestNewReporterNilClockUsesSystemClock(t *testing.T) {
	r := status.NewReporter(testApp, nil)

	snap, err := r.Snapshot(0, 1024, 512)
	require.NoError(t, err)

	_, err = time.ParseInLocation(status.TimestampLayout, snap.Timestamp, time.Local)
	assert.NoError(t, err)
}
