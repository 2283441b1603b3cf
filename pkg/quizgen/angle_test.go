package quizgen

import (
	"math/rand"
	"testing"
)

func TestAssignCoversEveryTheme(t *testing.T) {
	assigner := NewAngleAssigner(rand.New(rand.NewSource(1)))

	themes := []string{"Memory", "Habits", "Focus", "Sleep", "Learning"}
	assigned := assigner.Assign(themes)

	if len(assigned) != len(themes) {
		t.Fatalf("expected %d assignments, got %d", len(themes), len(assigned))
	}
	for i, twa := range assigned {
		if twa.Theme != themes[i] {
			t.Errorf("assignment %d: theme %q, want %q", i, twa.Theme, themes[i])
		}
	}
}

func TestAssignPicksTwoDistinctAngles(t *testing.T) {
	assigner := NewAngleAssigner(rand.New(rand.NewSource(42)))

	valid := map[Angle]bool{
		AngleCommonMisconception:  true,
		AnglePracticalApplication: true,
		AngleConceptExtension:     true,
	}

	for run := 0; run < 50; run++ {
		assigned := assigner.Assign([]string{"Theme"})
		angles := assigned[0].AnglesToUse

		if len(angles) != 2 {
			t.Fatalf("expected 2 angles, got %d", len(angles))
		}
		if angles[0] == angles[1] {
			t.Fatalf("angles must be distinct, got %q twice", angles[0])
		}
		for _, a := range angles {
			if !valid[a] {
				t.Fatalf("unknown angle %q", a)
			}
		}
	}
}

func TestAssignEmptyThemes(t *testing.T) {
	assigner := NewAngleAssigner(nil)

	assigned := assigner.Assign(nil)
	if len(assigned) != 0 {
		t.Fatalf("expected no assignments, got %d", len(assigned))
	}
}
