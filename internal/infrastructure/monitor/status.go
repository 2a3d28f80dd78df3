package monitor

import "time"

type Status struct {
	Online          bool            `json:"online"`
	Backends        map[string]bool `json:"backends"`
	PendingRevision uint64          `json:"pending_revision"`
	LastCheck       time.Time       `json:"last_check"`
}
