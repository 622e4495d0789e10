package http

// HealthResponse answers liveness checks
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"gsa-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck is the outcome of probing one backend: ok, fail, skipped when
// the backend is not configured, unknown when it cannot be pinged
type ReadyCheck struct {
	Name      string `json:"name"                 example:"pg"`
	Status    string `json:"status"               example:"ok"`
	LatencyMS int64  `json:"latency_ms,omitempty" example:"3"`
	Error     string `json:"error,omitempty"      example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse rolls the checks up: fail when any failed, degraded when any
// is not ok, ok otherwise
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse reports the process name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"gsa-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// KeywordsResponse lists the filter keywords treated as presentation settings
type KeywordsResponse struct {
	Settings    []string `json:"settings"`
	DefaultRows int      `json:"default_rows" example:"50"`
}
