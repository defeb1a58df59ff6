package db

import "time"

// Snapshot represents a row in the snapshots table.
type Snapshot struct {
	ID        int64
	Source    string
	SongCount int
	CreatedAt time.Time
}
