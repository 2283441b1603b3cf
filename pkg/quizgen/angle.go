package quizgen

import (
	"math/rand"
	"time"
)

// Angle is one of the fixed creative framings used to diversify stage 2
// questions. The label text is part of the prompt contract.
type Angle string

const (
	AngleCommonMisconception  Angle = "Common Misconception"
	AnglePracticalApplication Angle = "Practical Application"
	AngleConceptExtension     Angle = "Concept Extension/Contrast"
)

var creativeAngles = []Angle{
	AngleCommonMisconception,
	AnglePracticalApplication,
	AngleConceptExtension,
}

const anglesPerTheme = 2

// AngleAssigner picks, per theme, a random subset of creative angles.
type AngleAssigner struct {
	rng *rand.Rand
}

// NewAngleAssigner creates an assigner. Pass a seeded *rand.Rand for
// deterministic output in tests; nil uses a time-seeded source.
func NewAngleAssigner(rng *rand.Rand) *AngleAssigner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AngleAssigner{rng: rng}
}

// Assign returns one entry per theme, each with anglesPerTheme distinct
// angles drawn without replacement from the fixed set.
func (a *AngleAssigner) Assign(themes []string) []ThemeWithAngles {
	assigned := make([]ThemeWithAngles, 0, len(themes))
	for _, theme := range themes {
		shuffled := make([]Angle, len(creativeAngles))
		copy(shuffled, creativeAngles)
		a.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assigned = append(assigned, ThemeWithAngles{
			Theme:       theme,
			AnglesToUse: shuffled[:anglesPerTheme],
		})
	}
	return assigned
}
