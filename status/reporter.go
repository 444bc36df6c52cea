// Package status builds human-readable status snapshots from raw runtime counters.
package status

import (
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 local time without an offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Clock supplies the snapshot timestamp. Inject a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// AppInfo identifies the running application.
type AppInfo struct {
	Name        string
	Version     string
	Environment string
}

// Snapshot is one immutable status payload, computed per request.
type Snapshot struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
	MemoryTotal string `json:"memoryTotal"`
	MemoryFree  string `json:"memoryFree"`
	MemoryUsed  string `json:"memoryUsed"`
}

// Reporter assembles snapshots. It holds no mutable state and is safe for
// concurrent use.
type Reporter struct {
	app   AppInfo
	clock Clock
}

// NewReporter creates a Reporter. A nil clock falls back to the system clock.
func NewReporter(app AppInfo, clock Clock) *Reporter {
	if clock == nil {
		clock = systemClock{}
	}
	return &Reporter{app: app, clock: clock}
}

// App returns the application identity the reporter was built with.
func (r *Reporter) App() AppInfo { return r.app }

// Timestamp returns the current time in the snapshot layout.
func (r *Reporter) Timestamp() string {
	return r.clock.Now().Format(TimestampLayout)
}

// Snapshot assembles a status payload from raw counters. Memory used is
// computed on raw bytes before any formatting. Returns ErrInvalidArgument
// when memFree exceeds memTotal or uptime is negative.
func (r *Reporter) Snapshot(uptimeMillis int64, memTotal, memFree uint64) (Snapshot, error) {
	if memFree > memTotal {
		return Snapshot{}, fmt.Errorf("%w: free memory %d exceeds total %d", ErrInvalidArgument, memFree, memTotal)
	}

	uptime, err := FormatUptime(uptimeMillis)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Application: r.app.Name,
		Version:     r.app.Version,
		Environment: r.app.Environment,
		Timestamp:   r.Timestamp(),
		Uptime:      uptime,
		MemoryTotal: FormatBytes(memTotal),
		MemoryFree:  FormatBytes(memFree),
		MemoryUsed:  FormatBytes(memTotal - memFree),
	}, nil
}
