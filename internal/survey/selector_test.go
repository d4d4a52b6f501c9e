package survey

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolOf(n int, pinned ...int) []Question {
	qs := make([]Question, n)
	pinnedSet := make(map[int]bool, len(pinned))
	for _, i := range pinned {
		pinnedSet[i] = true
	}
	for i := range qs {
		qs[i] = NewQuestion(TypeText)
		qs[i].Title = "Question"
		qs[i].Order = i
		qs[i].IsPinned = pinnedSet[i]
	}
	return qs
}

// TestSelectSubsetAlwaysIncludesPinned verifies every pinned question
// appears in every selection and the result has exactly the requested size.
func TestSelectSubsetAlwaysIncludesPinned(t *testing.T) {
	qs := poolOf(10, 2, 7)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		selected, err := SelectSubset(qs, 4, rng)
		require.NoError(t, err)
		require.Len(t, selected, 4)

		got := make(map[string]bool, len(selected))
		for _, q := range selected {
			got[q.LocalID] = true
		}
		assert.True(t, got[qs[2].LocalID], "pinned question missing from selection")
		assert.True(t, got[qs[7].LocalID], "pinned question missing from selection")
	}
}

// TestSelectSubsetPreservesOrder verifies the selection keeps the original
// relative order regardless of sampling order.
func TestSelectSubsetPreservesOrder(t *testing.T) {
	qs := poolOf(8)
	selected, err := SelectSubset(qs, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	for i := 1; i < len(selected); i++ {
		assert.Less(t, selected[i-1].Order, selected[i].Order, "selection must preserve question order")
	}
}

func TestSelectSubsetCountClamped(t *testing.T) {
	qs := poolOf(3)
	selected, err := SelectSubset(qs, 10, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Len(t, selected, 3, "count larger than the pool selects everything")
}

func TestSelectSubsetPinnedOverflow(t *testing.T) {
	qs := poolOf(5, 0, 1, 2)
	_, err := SelectSubset(qs, 2, rand.New(rand.NewSource(7)))
	var overflow *PinnedOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 3, overflow.PinnedCount)
	assert.Equal(t, 2, overflow.RandomCount)
}

// TestSelectSubsetDropsOrphanedConditionals verifies a question whose
// condition source did not make the subset never appears in the result.
func TestSelectSubsetDropsOrphanedConditionals(t *testing.T) {
	qs := poolOf(6)
	gate := NewQuestion(TypeBoolean)
	gate.Title = "Gate"
	gate.Order = 0
	qs[0] = gate
	qs[1].Condition = &Condition{DependsOn: gate.LocalID, ShowWhen: TriggerValues{BooleanAnswerTrue}}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		selected, err := SelectSubset(qs, 3, rng)
		require.NoError(t, err)
		require.Len(t, selected, 3)

		got := make(map[string]bool, len(selected))
		for _, q := range selected {
			got[q.LocalID] = true
		}
		if got[qs[1].LocalID] {
			assert.True(t, got[gate.LocalID], "a conditional question requires its source in the subset")
		}
	}
}

// TestSelectSubsetPinnedOrphanFails verifies a pinned conditional whose
// source cannot be in the subset is an error rather than a silent drop.
func TestSelectSubsetPinnedOrphanFails(t *testing.T) {
	qs := poolOf(4)
	gate := NewQuestion(TypeBoolean)
	gate.Title = "Gate"
	gate.Order = 0
	qs[0] = gate

	// Pin every slot except the gate so the source can never be selected.
	for i := 1; i < 4; i++ {
		qs[i].IsPinned = true
	}
	qs[1].Condition = &Condition{DependsOn: gate.LocalID, ShowWhen: TriggerValues{BooleanAnswerTrue}}

	_, err := SelectSubset(qs, 3, rand.New(rand.NewSource(9)))
	var overflow *PinnedOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, qs[1].LocalID, overflow.QuestionID)
}
