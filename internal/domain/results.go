package domain

import "time"

// CompletionTier is a qualitative grade of a finished session, used
// by the results screen to pick a title.
type CompletionTier string

const (
	TierFull CompletionTier = "full" // every question answered
	TierHalf CompletionTier = "half" // at least half answered
	TierBase CompletionTier = "base" // anything less
)

// Results summarizes a completed session.
type Results struct {
	Answered  int
	Skipped   int
	Favorited int
	Total     int
	Minutes   int
	Tier      CompletionTier
}

// TierFor derives the completion tier from the answered ratio.
func TierFor(answered, total int) CompletionTier {
	switch {
	case total > 0 && answered >= total:
		return TierFull
	case total > 0 && answered*2 >= total:
		return TierHalf
	default:
		return TierBase
	}
}

// ElapsedMinutes rounds a session duration to whole minutes.
func ElapsedMinutes(start, end time.Time) int {
	if start.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Round(time.Minute) / time.Minute)
}
