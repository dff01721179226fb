package db

import "time"

// Extraction represents a row in the extractions table: one clip written
// during a move-extraction session.
type Extraction struct {
	ID               int64
	SessionID        string
	VideoPath        string
	Character        string
	Move             string
	TimestampSeconds float64
	StartSeconds     float64
	EndSeconds       float64
	FrameCount       int
	OutputPath       string
	CreatedAt        time.Time
}
