package response

import "time"

// Health is the body of GET /health
type Health struct {
	Status    string    `json:"status"`
	Players   int       `json:"players"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}
