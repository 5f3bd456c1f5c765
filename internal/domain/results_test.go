package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		total    int
		want     CompletionTier
	}{
		{"all answered", 5, 5, TierFull},
		{"exactly half", 2, 4, TierHalf},
		{"just over half", 3, 5, TierHalf},
		{"under half", 1, 5, TierBase},
		{"none answered", 0, 5, TierBase},
		{"empty session", 0, 0, TierBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.answered, tt.total))
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"rounds down", start.Add(7*time.Minute + 20*time.Second), 7},
		{"rounds up", start.Add(7*time.Minute + 40*time.Second), 8},
		{"zero duration", start, 0},
		{"end before start", start.Add(-time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedMinutes(start, tt.end))
		})
	}
}

func TestElapsedMinutes_ZeroStart(t *testing.T) {
	assert.Equal(t, 0, ElapsedMinutes(time.Time{}, time.Now()))
}

func TestFavoritesKeyFor(t *testing.T) {
	at := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)

	key := FavoritesKeyFor(TargetFamily, at)

	assert.Equal(t, TargetFamily, key.Target)
	assert.Equal(t, "2026-03-01", key.Day)
}
