package dto

type InitRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	SiteName string `json:"site_name" binding:"required"`
}

type UserStatsResponse struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	Admins     int64            `json:"admins"`
	Social     int64            `json:"social"`
	WithPhone  int64            `json:"with_phone"`
	NewLast7d  int64            `json:"new_last_7d"`
	Logins24h  int64            `json:"logins_last_24h"`
	ByProvider map[string]int64 `json:"by_provider"`
}

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	Users      UserStatsResponse  `json:"users"`
	SystemInfo SystemInfoResponse `json:"system_info"`
}

type DatabaseStatus struct {
	Type      string  `json:"type"`
	OK        bool    `json:"ok"`
	LatencyMS float64 `json:"latency_ms"`
	Error     string  `json:"error,omitempty"`
}

type RedisStatus struct {
	Mode string `json:"mode"` // redis, memory
	OK   bool   `json:"ok"`
}

type SystemStatusResponse struct {
	Database      DatabaseStatus `json:"database"`
	Redis         RedisStatus    `json:"redis"`
	StartedAt     int64          `json:"started_at"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Version       string         `json:"version"`
}
