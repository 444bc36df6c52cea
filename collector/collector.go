// Package collector samples ambient runtime counters for the status API.
package collector

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo holds OS details for the info endpoint.
type HostInfo struct {
	OS        string `json:"os"`
	OSVersion string `json:"osVersion"`
	Arch      string `json:"osArch"`
}

// Source provides the raw counters the reporter formats. Handlers depend on
// this interface so they can be tested without a real process environment.
type Source interface {
	// UptimeMillis is the elapsed time since process start, in milliseconds.
	UptimeMillis() int64
	// Memory returns total and free memory in raw bytes, sampled together.
	Memory() (total, free uint64, err error)
	// Host returns OS name, version and architecture.
	Host() (HostInfo, error)
}

// System is the real Source, backed by gopsutil and the process start time.
type System struct {
	started time.Time
}

// NewSystem creates a System source anchored at the current instant.
func NewSystem() *System {
	return &System{started: time.Now()}
}

func (s *System) UptimeMillis() int64 {
	return time.Since(s.started).Milliseconds()
}

// Memory samples virtual memory in a single gopsutil call, so free never
// exceeds total within one reading.
func (s *System) Memory() (uint64, uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("sample virtual memory: %w", err)
	}
	return vm.Total, vm.Available, nil
}

func (s *System) Host() (HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		// Fall back to what the Go runtime knows.
		return HostInfo{OS: runtime.GOOS, Arch: runtime.GOARCH}, nil
	}
	return HostInfo{
		OS:        info.OS + " " + info.Platform,
		OSVersion: info.PlatformVersion,
		Arch:      info.KernelArch,
	}, nil
}
