package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPlanShift(t *testing.T) {
	tests := []struct {
		name     string
		oldIndex int
		newIndex int
		want     domain.ShiftRange
		ok       bool
	}{
		{
			// In [0,1,2,3], moving 3 to position 1 must shift 1 and 2
			// forward, yielding [0,3,1,2].
			name:     "backward move shifts displaced range up",
			oldIndex: 3,
			newIndex: 1,
			want:     domain.ShiftRange{Low: 1, High: 2, Delta: 1},
			ok:       true,
		},
		{
			// In [0,1,2,3], moving 0 to position 2 must shift 1 and 2
			// back, yielding [1,2,0,3].
			name:     "forward move shifts displaced range down",
			oldIndex: 0,
			newIndex: 2,
			want:     domain.ShiftRange{Low: 1, High: 2, Delta: -1},
			ok:       true,
		},
		{
			name:     "adjacent forward move shifts a single slot",
			oldIndex: 1,
			newIndex: 2,
			want:     domain.ShiftRange{Low: 2, High: 2, Delta: -1},
			ok:       true,
		},
		{
			name:     "adjacent backward move shifts a single slot",
			oldIndex: 2,
			newIndex: 1,
			want:     domain.ShiftRange{Low: 1, High: 1, Delta: 1},
			ok:       true,
		},
		{
			name:     "same index is a no-op",
			oldIndex: 2,
			newIndex: 2,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.PlanShift(tt.oldIndex, tt.newIndex)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// applyShift simulates the bulk range update over a position slice so
// the plan can be checked end to end against the expected layouts.
func applyShift(positions map[string]int, moveID string, newIndex int) map[string]int {
	oldIndex := positions[moveID]
	shift, ok := domain.PlanShift(oldIndex, newIndex)
	out := make(map[string]int, len(positions))
	for id, pos := range positions {
		out[id] = pos
		if !ok || id == moveID {
			continue
		}
		if pos >= shift.Low && pos <= shift.High {
			out[id] = pos + shift.Delta
		}
	}
	out[moveID] = newIndex
	return out
}

func TestPlanShiftEndToEnd(t *testing.T) {
	start := func() map[string]int {
		return map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}
	}

	t.Run("move last to second", func(t *testing.T) {
		got := applyShift(start(), "d", 1)
		assert.Equal(t, map[string]int{"a": 0, "d": 1, "b": 2, "c": 3}, got)
	})

	t.Run("move first to third", func(t *testing.T) {
		got := applyShift(start(), "a", 2)
		assert.Equal(t, map[string]int{"b": 0, "c": 1, "a": 2, "d": 3}, got)
	})

	t.Run("no two entries share an index after any move", func(t *testing.T) {
		for from := 0; from < 4; from++ {
			for to := 0; to < 4; to++ {
				positions := start()
				var moveID string
				for id, pos := range positions {
					if pos == from {
						moveID = id
					}
				}
				got := applyShift(positions, moveID, to)
				seen := make(map[int]bool)
				for _, pos := range got {
					assert.False(t, seen[pos], "duplicate index %d moving %d->%d", pos, from, to)
					seen[pos] = true
				}
			}
		}
	})
}
