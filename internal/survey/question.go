package survey

import (
	"fmt"

	"github.com/google/uuid"
)

// QuestionType is the closed set of question kinds an editor can create.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
	TypeText     QuestionType = "text"
	TypeImage    QuestionType = "image"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeSingle, TypeMultiple, TypeBoolean, TypeText, TypeImage:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == TypeSingle || t == TypeMultiple
}

// Option is a selectable answer of a single/multiple question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Validation holds the type-specific answer constraints.
// MinLength/MaxLength apply to text questions, MaxImages to image questions.
type Validation struct {
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
	MaxImages int `json:"max_images,omitempty"`
}

// Condition makes a question visible only when an earlier question's answer
// matches one of the trigger values. DependsOn holds the LocalID of the
// source question; positional indices are a serialization concern only.
type Condition struct {
	DependsOn string
	ShowWhen  TriggerValues
}

// Matches reports whether the given answer satisfies the condition.
func (c *Condition) Matches(answer string) bool {
	for _, v := range c.ShowWhen {
		if v == answer {
			return true
		}
	}
	return false
}

// Question is a single draft question. Questions are owned by a Draft;
// LocalID is the stable in-memory identity and survives reordering, while
// Order is re-assigned on every structural mutation.
type Question struct {
	LocalID     string
	Title       string
	Description string
	Type        QuestionType
	Options     []Option
	Validation  *Validation
	IsRequired  bool
	IsPinned    bool
	Order       int
	Condition   *Condition
}

const (
	maxOptions = 10
	minOptions = 1

	defaultMinLength = 1
	defaultMaxLength = 500
	defaultMaxImages = 3
)

// NewQuestion builds a question with type-appropriate defaults: two
// placeholder options for choice questions, length limits for text,
// an image cap for image questions, nothing for boolean.
func NewQuestion(t QuestionType) Question {
	q := Question{
		LocalID:    newLocalID(),
		Type:       t,
		IsRequired: true,
	}
	q.Options, q.Validation = defaultsFor(t)
	return q
}

func newLocalID() string {
	return "q_" + uuid.NewString()
}

func defaultsFor(t QuestionType) ([]Option, *Validation) {
	switch t {
	case TypeSingle, TypeMultiple:
		return []Option{
			{Value: "A", Label: "Option A"},
			{Value: "B", Label: "Option B"},
		}, nil
	case TypeText:
		return nil, &Validation{MinLength: defaultMinLength, MaxLength: defaultMaxLength}
	case TypeImage:
		return nil, &Validation{MaxImages: defaultMaxImages}
	default:
		return nil, nil
	}
}

// ChangeType returns a copy of q with the new type and the new type's
// default options/validation. Title, flags and condition are preserved;
// the owning draft is responsible for re-validating conditions that may
// have become invalid for dependents of this question.
func ChangeType(q Question, t QuestionType) Question {
	out := q
	out.Type = t
	out.Options, out.Validation = defaultsFor(t)
	return out
}

// AddOption appends an option labeled with the next letter (A, B, C, ...).
// Past the 10-option cap this is a no-op.
func (q *Question) AddOption() {
	if len(q.Options) >= maxOptions {
		return
	}
	value := string(rune('A' + len(q.Options)))
	q.Options = append(q.Options, Option{Value: value, Label: fmt.Sprintf("Option %s", value)})
}

// RemoveOption deletes the option at index. An option-bearing question
// always keeps at least one option, so removing the last one is a no-op.
func (q *Question) RemoveOption(index int) {
	if len(q.Options) <= minOptions || index < 0 || index >= len(q.Options) {
		return
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
}

// CanGateOthers reports whether this question may act as a condition
// source: boolean always, single/multiple only with at least one option.
func (q Question) CanGateOthers() bool {
	if q.Type == TypeBoolean {
		return true
	}
	return q.Type.HasOptions() && len(q.Options) > 0
}
