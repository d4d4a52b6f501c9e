package survey

import "fmt"

// ConditionSnapshot is the serialized form of a condition. DependsOn is the
// positional index of the source question within the serialized list; the
// in-memory local id never leaves the draft.
type ConditionSnapshot struct {
	DependsOn int           `json:"depends_on"`
	ShowWhen  TriggerValues `json:"show_when"`
}

// QuestionSnapshot is the serialized form of a draft question.
type QuestionSnapshot struct {
	ID          uint               `json:"id,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Type        QuestionType       `json:"type"`
	Options     []Option           `json:"options,omitempty"`
	IsRequired  bool               `json:"is_required"`
	IsPinned    bool               `json:"is_pinned"`
	Order       int                `json:"order"`
	Validation  *Validation        `json:"validation,omitempty"`
	Condition   *ConditionSnapshot `json:"condition,omitempty"`
}

// Snapshot is the serialized form of a whole draft, as submitted to the
// survey API at publish time.
type Snapshot struct {
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	IsRandom    bool               `json:"is_random"`
	RandomCount int                `json:"random_count,omitempty"`
	Questions   []QuestionSnapshot `json:"questions"`
}

// Snapshot serializes the draft, remapping every condition's DependsOn from
// the stable local id to the question's positional index.
func (d *Draft) Snapshot() (Snapshot, error) {
	s := Snapshot{
		Title:       d.Title,
		Description: d.Description,
		IsRandom:    d.IsRandom,
	}
	if d.IsRandom {
		s.RandomCount = d.RandomCount
	}
	s.Questions = make([]QuestionSnapshot, len(d.questions))
	for i, q := range d.questions {
		qs := QuestionSnapshot{
			Title:       q.Title,
			Description: q.Description,
			Type:        q.Type,
			Options:     q.Options,
			IsRequired:  q.IsRequired,
			IsPinned:    q.IsPinned,
			Order:       i,
			Validation:  q.Validation,
		}
		if q.Condition != nil {
			dep := indexByLocalID(d.questions, q.Condition.DependsOn)
			if dep < 0 {
				return Snapshot{}, &DanglingConditionError{QuestionID: q.LocalID, DependsOn: q.Condition.DependsOn}
			}
			qs.Condition = &ConditionSnapshot{DependsOn: dep, ShowWhen: q.Condition.ShowWhen}
		}
		s.Questions[i] = qs
	}
	return s, nil
}

// HydrateDraft rebuilds an editable draft from a persisted survey. Local
// ids for persisted questions are derived deterministically from the
// storage id so condition remapping stays stable across hydrations, and
// each condition's positional DependsOn is translated back to a local id.
func HydrateDraft(title, description string, isRandom bool, randomCount int, questions []QuestionSnapshot) (*Draft, error) {
	d := NewDraft()
	d.Title = title
	d.Description = description
	d.IsRandom = isRandom
	d.RandomCount = randomCount

	d.questions = make([]Question, len(questions))
	for i, qs := range questions {
		localID := newLocalID()
		if qs.ID != 0 {
			localID = fmt.Sprintf("existing_%d", qs.ID)
		}
		d.questions[i] = Question{
			LocalID:     localID,
			Title:       qs.Title,
			Description: qs.Description,
			Type:        qs.Type,
			Options:     qs.Options,
			Validation:  qs.Validation,
			IsRequired:  qs.IsRequired,
			IsPinned:    qs.IsPinned,
			Order:       i,
		}
	}
	for i, qs := range questions {
		if qs.Condition == nil {
			continue
		}
		dep := qs.Condition.DependsOn
		if dep < 0 || dep >= len(d.questions) {
			return nil, &DanglingConditionError{QuestionID: d.questions[i].LocalID, DependsOn: fmt.Sprintf("index %d", dep)}
		}
		d.questions[i].Condition = &Condition{
			DependsOn: d.questions[dep].LocalID,
			ShowWhen:  qs.Condition.ShowWhen,
		}
	}
	d.repairConditions()
	return d, nil
}
