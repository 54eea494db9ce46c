// Package scheduler implements the SM-2 spaced repetition algorithm as a
// pure transformation over CardProgress. It performs no I/O; callers are
// responsible for validating the quality rating and persisting the result.
package scheduler

import (
	"math"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// PassingQuality is the lowest rating counted as a successful recall.
const PassingQuality = 3

// Apply returns the progress record after one review with the given quality
// rating (0-5). Callers must reject out-of-range quality before invoking.
//
// Failed recall (quality < 3) resets the repetition streak and interval to
// one day. Successful recall grows the interval: 1 day, then 6 days, then
// interval * ease factor. The ease factor is adjusted in both cases, so a
// failure nudges difficulty without wiping the accumulated easiness, and is
// floored at models.MinEaseFactor to keep hard cards from collapsing the
// schedule.
func Apply(p models.CardProgress, quality int, now time.Time) models.CardProgress {
	if quality < PassingQuality {
		p.Repetitions = 0
		p.IntervalDays = 1
	} else {
		switch p.Repetitions {
		case 0:
			p.IntervalDays = 1
		case 1:
			p.IntervalDays = 6
		default:
			// math.Round rounds half away from zero; the exact mode
			// matters because it decides review dates.
			p.IntervalDays = int(math.Round(float64(p.IntervalDays) * p.EaseFactor))
		}
		p.Repetitions++
	}

	q := float64(quality)
	p.EaseFactor = math.Max(
		models.MinEaseFactor,
		p.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)),
	)

	p.NextReviewAt = now.AddDate(0, 0, p.IntervalDays)

	return p
}
