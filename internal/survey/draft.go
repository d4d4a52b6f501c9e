package survey

import "fmt"

// Draft is the aggregate root of an in-progress survey definition. It owns
// the ordered question collection and keeps the structural invariants:
// dense zero-based orders, unique local ids, and no dangling or forward
// condition references. A draft belongs to a single editing session and is
// never shared.
type Draft struct {
	Title       string
	Description string
	IsRandom    bool
	RandomCount int

	questions []Question
	expanded  map[string]bool
}

func NewDraft() *Draft {
	return &Draft{expanded: make(map[string]bool)}
}

// Questions returns a copy of the ordered question list.
func (d *Draft) Questions() []Question {
	out := make([]Question, len(d.questions))
	copy(out, d.questions)
	return out
}

// Len returns the number of questions in the draft.
func (d *Draft) Len() int {
	return len(d.questions)
}

// Question looks a question up by its local id.
func (d *Draft) Question(localID string) (Question, bool) {
	if i := indexByLocalID(d.questions, localID); i >= 0 {
		return d.questions[i], true
	}
	return Question{}, false
}

// PinnedCount counts the questions marked as always-included.
func (d *Draft) PinnedCount() int {
	n := 0
	for _, q := range d.questions {
		if q.IsPinned {
			n++
		}
	}
	return n
}

// AddQuestion appends a new question of the given type at the end and
// expands it in the editor.
func (d *Draft) AddQuestion(t QuestionType) Question {
	q := NewQuestion(t)
	q.Order = len(d.questions)
	d.questions = append(d.questions, q)
	d.expanded[q.LocalID] = true
	return q
}

// AppendQuestion appends an already-built question, assigning it the next
// order. Used when assembling a draft from a request payload.
func (d *Draft) AppendQuestion(q Question) Question {
	if q.LocalID == "" {
		q.LocalID = newLocalID()
	}
	q.Order = len(d.questions)
	d.questions = append(d.questions, q)
	return q
}

// UpdateQuestion replaces the question with the same local id, then
// re-validates every condition: retyping a source question away from a
// gating type clears its dependents' conditions.
func (d *Draft) UpdateQuestion(q Question) error {
	i := indexByLocalID(d.questions, q.LocalID)
	if i < 0 {
		return fmt.Errorf("unknown question %s", q.LocalID)
	}
	q.Order = i
	d.questions[i] = q
	d.repairConditions()
	return nil
}

// DeleteQuestion removes a question, re-densifies the order of the rest,
// and clears the condition of every question that depended on it.
func (d *Draft) DeleteQuestion(localID string) bool {
	i := indexByLocalID(d.questions, localID)
	if i < 0 {
		return false
	}
	d.questions = append(d.questions[:i], d.questions[i+1:]...)
	delete(d.expanded, localID)
	d.renumber()
	d.repairConditions()
	return true
}

// DuplicateQuestion clones a question at the end of the draft with a fresh
// local id and a suffixed title. The condition is deliberately not copied:
// a cloned dependency reference has no unambiguous meaning.
func (d *Draft) DuplicateQuestion(localID string) (Question, bool) {
	i := indexByLocalID(d.questions, localID)
	if i < 0 {
		return Question{}, false
	}
	clone := d.questions[i]
	clone.LocalID = newLocalID()
	clone.Title = clone.Title + " (copy)"
	clone.Condition = nil
	clone.Options = append([]Option(nil), clone.Options...)
	if clone.Validation != nil {
		v := *clone.Validation
		clone.Validation = &v
	}
	clone.Order = len(d.questions)
	d.questions = append(d.questions, clone)
	d.expanded[clone.LocalID] = true
	return clone, true
}

// Reorder moves the question at from to position to, re-densifies orders,
// and clears any condition whose source no longer comes strictly before
// its dependent.
func (d *Draft) Reorder(from, to int) error {
	n := len(d.questions)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder out of range: %d -> %d with %d questions", from, to, n)
	}
	if from == to {
		return nil
	}
	q := d.questions[from]
	d.questions = append(d.questions[:from], d.questions[from+1:]...)
	d.questions = append(d.questions[:to], append([]Question{q}, d.questions[to:]...)...)
	d.renumber()
	d.repairConditions()
	return nil
}

// ToggleExpanded flips a question's editor-expansion state.
func (d *Draft) ToggleExpanded(localID string) {
	if d.expanded[localID] {
		delete(d.expanded, localID)
		return
	}
	if indexByLocalID(d.questions, localID) >= 0 {
		d.expanded[localID] = true
	}
}

// Expanded reports whether a question is currently expanded in the editor.
func (d *Draft) Expanded(localID string) bool {
	return d.expanded[localID]
}

func (d *Draft) renumber() {
	for i := range d.questions {
		d.questions[i].Order = i
	}
}

// repairConditions clears every condition that no longer resolves to a
// valid source: missing question, source at or after the dependent, or a
// source that lost its gating capability. Clearing is the recovery
// strategy; dangling references are never surfaced to the user.
func (d *Draft) repairConditions() {
	for i := range d.questions {
		q := &d.questions[i]
		if q.Condition == nil {
			continue
		}
		dep := indexByLocalID(d.questions, q.Condition.DependsOn)
		if dep < 0 || dep >= i || !d.questions[dep].CanGateOthers() {
			q.Condition = nil
		}
	}
}

// ValidateForPublish checks everything that must hold before the draft can
// be submitted and returns a *ValidationError listing every violation, or
// nil when the draft is publishable.
func (d *Draft) ValidateForPublish() error {
	var violations []Violation

	if d.Title == "" {
		violations = append(violations, Violation{Field: "title", Message: "title is required"})
	}
	if len(d.questions) == 0 {
		violations = append(violations, Violation{Field: "questions", Message: "at least one question is required"})
	}
	for i, q := range d.questions {
		if q.Title == "" {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("questions[%d].title", i),
				Message: "question title is required",
			})
		}
		if q.Type.HasOptions() && len(q.Options) == 0 {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("questions[%d].options", i),
				Message: "choice questions need at least one option",
			})
		}
	}

	if d.IsRandom {
		if d.RandomCount < 1 || d.RandomCount > len(d.questions) {
			violations = append(violations, Violation{
				Field:   "random_count",
				Message: fmt.Sprintf("random count must be between 1 and %d", len(d.questions)),
			})
		} else if pinned := d.PinnedCount(); pinned > d.RandomCount {
			violations = append(violations, Violation{
				Field:   "random_count",
				Message: fmt.Sprintf("%d pinned questions cannot fit a random subset of %d", pinned, d.RandomCount),
			})
		}
	}

	if err := ValidateConditions(d.questions); err != nil {
		violations = append(violations, Violation{Field: "questions", Message: err.Error()})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
