package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCorruptionLevel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		hoursAgo float64
		want     float64
	}{
		{name: "just attempted", hoursAgo: 0, want: 0.1},
		{name: "ten hours", hoursAgo: 10, want: 0.2},
		{name: "fifty hours", hoursAgo: 50, want: 0.6},
		{name: "caps at full corruption", hoursAgo: 200, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-time.Duration(tt.hoursAgo * float64(time.Hour)))
			got := CalculateCorruptionLevel(&last, now)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestCalculateCorruptionLevelNeverAttempted(t *testing.T) {
	got := CalculateCorruptionLevel(nil, time.Now())
	assert.Equal(t, 1.0, got)
}

func TestCalculateAdvancedCorruptionLevel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-24 * time.Hour)

	lowAccuracy := CalculateAdvancedCorruptionLevel(&last, 0.2, now)
	highAccuracy := CalculateAdvancedCorruptionLevel(&last, 1.0, now)

	// Better mastery slows forgetting.
	assert.Less(t, highAccuracy, lowAccuracy)
	assert.GreaterOrEqual(t, lowAccuracy, 0.0)
	assert.LessOrEqual(t, lowAccuracy, 1.0)
}

func TestCalculateAdvancedCorruptionLevelNeverAttempted(t *testing.T) {
	got := CalculateAdvancedCorruptionLevel(nil, 0.9, time.Now())
	assert.Equal(t, 1.0, got)
}
