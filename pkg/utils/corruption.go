package utils

import (
	"math"
	"time"
)

// CalculateCorruptionLevel returns how much of a book's content the user has
// forgotten, in [0.0, 1.0], based on the Ebbinghaus forgetting curve. A book
// never attempted is fully corrupted. Right after an attempt corruption sits
// at 10% and grows 1% per hour until saturating.
func CalculateCorruptionLevel(lastAttemptedAt *time.Time, now time.Time) float64 {
	if lastAttemptedAt == nil {
		return 1.0
	}

	hoursPassed := now.Sub(*lastAttemptedAt).Hours()
	corruptionLevel := math.Min(1.0, 0.1+hoursPassed*0.01)

	return math.Round(corruptionLevel*100) / 100
}

// CalculateAdvancedCorruptionLevel applies an exponential decay model where
// a higher best accuracy slows forgetting.
func CalculateAdvancedCorruptionLevel(lastAttemptedAt *time.Time, highestAccuracy float64, now time.Time) float64 {
	if lastAttemptedAt == nil {
		return 1.0
	}

	hoursPassed := now.Sub(*lastAttemptedAt).Hours()

	baseForgetRate := 0.01 * (1 - highestAccuracy*0.3)
	initialRetention := 0.9

	retentionRate := initialRetention * math.Exp(-baseForgetRate*hoursPassed)
	corruptionLevel := math.Min(1.0, 1-retentionRate)

	return math.Round(corruptionLevel*100) / 100
}
