package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeleteQuestionKeepsOrdersDense verifies removing a question from the
// middle renumbers the remainder with no gaps.
func TestDeleteQuestionKeepsOrdersDense(t *testing.T) {
	d := NewDraft()
	first := d.AddQuestion(TypeText)
	second := d.AddQuestion(TypeText)
	third := d.AddQuestion(TypeText)

	require.True(t, d.DeleteQuestion(second.LocalID))
	qs := d.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, first.LocalID, qs[0].LocalID)
	assert.Equal(t, 0, qs[0].Order)
	assert.Equal(t, third.LocalID, qs[1].LocalID)
	assert.Equal(t, 1, qs[1].Order, "orders stay dense after a delete")

	assert.False(t, d.DeleteQuestion("q_missing"))
}

// TestDeleteSourceClearsDependentConditions verifies deleting a condition
// source clears the conditions of every question that depended on it.
func TestDeleteSourceClearsDependentConditions(t *testing.T) {
	d, gate, middle, _ := gatedDraft(t)

	require.True(t, d.DeleteQuestion(gate.LocalID))
	qs := d.Questions()
	require.Len(t, qs, 2)
	assert.Nil(t, qs[0].Condition, "the dependent of a deleted source loses its condition")

	// The leaf depended on the middle question, which survived.
	require.NotNil(t, qs[1].Condition)
	assert.Equal(t, middle.LocalID, qs[1].Condition.DependsOn)
}

// TestRetypeSourceClearsDependentConditions verifies retyping a gating
// question into a non-gating type invalidates its dependents' conditions.
func TestRetypeSourceClearsDependentConditions(t *testing.T) {
	d, gate, _, _ := gatedDraft(t)

	retyped := ChangeType(mustQuestion(t, d, gate.LocalID), TypeText)
	require.NoError(t, d.UpdateQuestion(retyped))

	qs := d.Questions()
	assert.Nil(t, qs[1].Condition, "a text question cannot gate, so the condition is cleared")
	assert.NotNil(t, qs[2].Condition, "the chain below an intact source is untouched")
}

// TestReorderClearsForwardConditions verifies moving a source after its
// dependent clears the now-forward condition, while valid ones survive.
func TestReorderClearsForwardConditions(t *testing.T) {
	d, gate, middle, leaf := gatedDraft(t)

	// Move the gate to the end: both the middle question (now before its
	// source) and transitively nothing else should keep pointing forward.
	require.NoError(t, d.Reorder(0, 2))
	qs := d.Questions()
	assert.Equal(t, []string{middle.LocalID, leaf.LocalID, gate.LocalID},
		[]string{qs[0].LocalID, qs[1].LocalID, qs[2].LocalID})
	assert.Equal(t, []int{0, 1, 2}, []int{qs[0].Order, qs[1].Order, qs[2].Order})

	assert.Nil(t, qs[0].Condition, "the source now sits after its dependent")
	require.NotNil(t, qs[1].Condition, "leaf still follows its source")
	assert.Equal(t, middle.LocalID, qs[1].Condition.DependsOn)

	assert.Error(t, d.Reorder(0, 5))
}

// TestDuplicateQuestionDropsCondition verifies a duplicate gets a fresh
// identity, a suffixed title and no condition, and does not share option
// storage with the original.
func TestDuplicateQuestionDropsCondition(t *testing.T) {
	d, _, middle, _ := gatedDraft(t)

	clone, ok := d.DuplicateQuestion(middle.LocalID)
	require.True(t, ok)
	assert.NotEqual(t, middle.LocalID, clone.LocalID)
	assert.Equal(t, middle.Title+" (copy)", clone.Title)
	assert.Nil(t, clone.Condition, "conditions are never copied")
	assert.Equal(t, d.Len()-1, clone.Order)

	clone.Options[0].Label = "changed"
	original := mustQuestion(t, d, middle.LocalID)
	assert.NotEqual(t, "changed", original.Options[0].Label, "duplicate options are a deep copy")
}

// TestValidateForPublishCollectsViolations verifies validation reports all
// problems at once instead of stopping at the first.
func TestValidateForPublishCollectsViolations(t *testing.T) {
	d := NewDraft()
	q := d.AddQuestion(TypeSingle)
	q.Options = nil
	require.NoError(t, d.UpdateQuestion(q))

	err := d.ValidateForPublish()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "questions[0].title")
	assert.Contains(t, fields, "questions[0].options")
}

func TestValidateForPublishRandomCountBounds(t *testing.T) {
	d := NewDraft()
	d.Title = "Registration"
	d.IsRandom = true
	d.RandomCount = 5
	q := d.AddQuestion(TypeText)
	q.Title = "Why do you want to join?"
	require.NoError(t, d.UpdateQuestion(q))

	var validationErr *ValidationError
	require.ErrorAs(t, d.ValidateForPublish(), &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "random_count", validationErr.Violations[0].Field)

	d.RandomCount = 1
	assert.NoError(t, d.ValidateForPublish())
}

// TestValidateForPublishPinnedOverflow verifies a draft whose pinned
// questions cannot fit the random subset is rejected.
func TestValidateForPublishPinnedOverflow(t *testing.T) {
	d := NewDraft()
	d.Title = "Registration"
	d.IsRandom = true
	d.RandomCount = 1
	for i := 0; i < 2; i++ {
		q := d.AddQuestion(TypeText)
		q.Title = "Question"
		q.IsPinned = true
		require.NoError(t, d.UpdateQuestion(q))
	}

	var validationErr *ValidationError
	require.ErrorAs(t, d.ValidateForPublish(), &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "random_count", validationErr.Violations[0].Field)
}

// TestSnapshotHydrateRoundTrip verifies conditions are serialized by
// position and translated back to stable local ids on hydration.
func TestSnapshotHydrateRoundTrip(t *testing.T) {
	d, _, _, _ := gatedDraft(t)

	snap, err := d.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Questions, 3)
	assert.Nil(t, snap.Questions[0].Condition)
	require.NotNil(t, snap.Questions[1].Condition)
	assert.Equal(t, 0, snap.Questions[1].Condition.DependsOn)
	require.NotNil(t, snap.Questions[2].Condition)
	assert.Equal(t, 1, snap.Questions[2].Condition.DependsOn)

	// Tag ids as persisted rows and hydrate back.
	for i := range snap.Questions {
		snap.Questions[i].ID = uint(i + 10)
	}
	restored, err := HydrateDraft(snap.Title, snap.Description, snap.IsRandom, snap.RandomCount, snap.Questions)
	require.NoError(t, err)

	qs := restored.Questions()
	require.Len(t, qs, 3)
	assert.Equal(t, "existing_10", qs[0].LocalID)
	require.NotNil(t, qs[1].Condition)
	assert.Equal(t, "existing_10", qs[1].Condition.DependsOn)
	require.NotNil(t, qs[2].Condition)
	assert.Equal(t, "existing_11", qs[2].Condition.DependsOn)
}

func TestHydrateDraftRejectsOutOfRangeCondition(t *testing.T) {
	questions := []QuestionSnapshot{
		{Title: "Gate", Type: TypeBoolean},
		{Title: "Gated", Type: TypeText, Condition: &ConditionSnapshot{DependsOn: 7, ShowWhen: TriggerValues{"true"}}},
	}
	_, err := HydrateDraft("Registration", "", false, 0, questions)
	var danglingErr *DanglingConditionError
	assert.ErrorAs(t, err, &danglingErr)
}

func TestToggleExpanded(t *testing.T) {
	d := NewDraft()
	q := d.AddQuestion(TypeText)
	assert.True(t, d.Expanded(q.LocalID), "new questions open expanded")

	d.ToggleExpanded(q.LocalID)
	assert.False(t, d.Expanded(q.LocalID))

	d.ToggleExpanded("q_missing")
	assert.False(t, d.Expanded("q_missing"), "unknown questions cannot be expanded")
}

func mustQuestion(t *testing.T, d *Draft, localID string) Question {
	t.Helper()
	q, ok := d.Question(localID)
	require.True(t, ok)
	return q
}
