// Package models defines the database representations of journeys.
package models

import "time"

// JourneyRecord is a completed or abandoned journey as stored in the
// journeys bucket, keyed by its start time.
type JourneyRecord struct {
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Duration    time.Duration `json:"duration"`
	StopsPassed int           `json:"stops_passed"`
	StopsTotal  int           `json:"stops_total"`
	Completed   bool          `json:"completed"`
}

// JourneySnapshot captures an in-progress journey at the moment the host
// stopped presenting it, so a later process can resume at the reduced
// background rate.
type JourneySnapshot struct {
	StartTime   time.Time     `json:"start_time"`
	SuspendedAt time.Time     `json:"suspended_at"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Duration    time.Duration `json:"duration"`
	Elapsed     time.Duration `json:"elapsed"`
	StopNames   []string      `json:"stop_names"`
}
