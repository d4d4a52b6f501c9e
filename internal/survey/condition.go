package survey

// BooleanAnswerTrue and BooleanAnswerFalse are the string forms boolean
// answers take when they gate other questions.
const (
	BooleanAnswerTrue  = "true"
	BooleanAnswerFalse = "false"
)

// ConditionSources returns the questions before index at that can act as a
// condition source for the question at at. The first question can never
// have a condition, so at == 0 yields an empty result.
func ConditionSources(questions []Question, at int) []Question {
	if at <= 0 || at > len(questions) {
		return nil
	}
	var sources []Question
	for i := 0; i < at; i++ {
		if questions[i].CanGateOthers() {
			sources = append(sources, questions[i])
		}
	}
	return sources
}

// ConditionValues returns the answer values a condition on q may trigger
// on: the question's options, or the fixed yes/no pair for booleans.
func ConditionValues(q Question) []Option {
	if q.Type == TypeBoolean {
		return []Option{
			{Value: BooleanAnswerTrue, Label: "Yes"},
			{Value: BooleanAnswerFalse, Label: "No"},
		}
	}
	return q.Options
}

// Visible reports whether the question at index is currently visible given
// the answers collected so far (keyed by question position). Visibility is
// resolved in dependency order: a question gated by a hidden question is
// itself hidden, regardless of the recorded answer.
func Visible(questions []Question, answers map[int]string, index int) bool {
	if index < 0 || index >= len(questions) {
		return false
	}
	vis := resolveVisibility(questions, answers)
	return vis[index]
}

func resolveVisibility(questions []Question, answers map[int]string) []bool {
	vis := make([]bool, len(questions))
	for i, q := range questions {
		if q.Condition == nil {
			vis[i] = true
			continue
		}
		dep := indexByLocalID(questions, q.Condition.DependsOn)
		if dep < 0 || dep >= i || !vis[dep] {
			continue
		}
		answer, ok := answers[dep]
		vis[i] = ok && q.Condition.Matches(answer)
	}
	return vis
}

// ValidateConditions checks structural well-formedness of every condition,
// independent of any answers. It returns a DanglingConditionError for a
// condition whose source is missing, not strictly earlier, or unable to
// gate, and an EmptyTriggerError for a condition with no trigger values.
func ValidateConditions(questions []Question) error {
	for i, q := range questions {
		if q.Condition == nil {
			continue
		}
		dep := indexByLocalID(questions, q.Condition.DependsOn)
		if dep < 0 || dep >= i || !questions[dep].CanGateOthers() {
			return &DanglingConditionError{QuestionID: q.LocalID, DependsOn: q.Condition.DependsOn}
		}
		if len(q.Condition.ShowWhen) == 0 {
			return &EmptyTriggerError{QuestionID: q.LocalID}
		}
	}
	return nil
}

func indexByLocalID(questions []Question, localID string) int {
	for i, q := range questions {
		if q.LocalID == localID {
			return i
		}
	}
	return -1
}
