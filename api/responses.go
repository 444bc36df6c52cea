package api

import "github.com/infoline/infoline-api/collector"

// AppBlock identifies the application in the info payload.
type AppBlock struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Description string `json:"description"`
}

// RuntimeBlock holds Go runtime introspection for the info payload.
type RuntimeBlock struct {
	GoVersion   string `json:"goVersion"`
	Processors  int    `json:"processors"`
	Goroutines  int    `json:"goroutines"`
	MemoryTotal string `json:"memoryTotal"`
	MemoryFree  string `json:"memoryFree"`
	MemoryUsed  string `json:"memoryUsed"`
}

// InfoResponse is the full info endpoint payload.
type InfoResponse struct {
	Application AppBlock                  `json:"application"`
	Runtime     RuntimeBlock              `json:"runtime"`
	System      collector.HostInfo        `json:"system"`
	Containers  []collector.ContainerInfo `json:"containers,omitempty"`
	Timestamp   string                    `json:"timestamp"`
}

// StatsBlock carries live request counters for the status payload.
type StatsBlock struct {
	TotalRequests     int64  `json:"totalRequests"`
	ActiveConnections int64  `json:"activeConnections"`
	LastDeployment    string `json:"lastDeployment"`
}

// StatusResponse is the combined status endpoint payload.
type StatusResponse struct {
	Status      string     `json:"status"`
	Uptime      string     `json:"uptime"`
	Application string     `json:"application"`
	Version     string     `json:"version"`
	Environment string     `json:"environment"`
	Timestamp   string     `json:"timestamp"`
	Stats       StatsBlock `json:"stats"`
}
