package models

import "time"

// Quality rating bounds for a review (0 = complete blackout, 5 = perfect).
const (
	MinQuality = 0
	MaxQuality = 5
)

// Review is one card review within a study session. Rows are append-only;
// they exist for analytics and are written in the same transaction as the
// progress update they describe.
type Review struct {
	ID               int       `json:"id"`
	ProgressID       int       `json:"progressId"`
	SessionID        int       `json:"sessionId"`
	Quality          int       `json:"quality"`
	Direction        Direction `json:"direction"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
	ReviewedAt       time.Time `json:"reviewedAt"`
}
