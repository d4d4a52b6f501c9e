package survey

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Answer is the decoded content of one submitted answer. Exactly one of
// the value fields is meaningful, selected by Type.
type Answer struct {
	Type    QuestionType
	Choice  string   // single
	Choices []string // multiple
	Bool    bool     // boolean
	Text    string   // text
	Images  []string // image: stored file references
}

// DecodeAnswer decodes a raw answer payload according to the question type
// it was submitted for. Each variant has a fixed shape; payloads that do
// not match it are a decode error, never guessed at.
func DecodeAnswer(t QuestionType, raw json.RawMessage) (Answer, error) {
	a := Answer{Type: t}
	switch t {
	case TypeSingle:
		if err := json.Unmarshal(raw, &a.Choice); err != nil {
			return Answer{}, fmt.Errorf("decoding single answer: %w", err)
		}
	case TypeMultiple:
		if err := json.Unmarshal(raw, &a.Choices); err != nil {
			return Answer{}, fmt.Errorf("decoding multiple answer: %w", err)
		}
	case TypeBoolean:
		if err := json.Unmarshal(raw, &a.Bool); err != nil {
			return Answer{}, fmt.Errorf("decoding boolean answer: %w", err)
		}
	case TypeText:
		if err := json.Unmarshal(raw, &a.Text); err != nil {
			return Answer{}, fmt.Errorf("decoding text answer: %w", err)
		}
	case TypeImage:
		if err := json.Unmarshal(raw, &a.Images); err != nil {
			return Answer{}, fmt.Errorf("decoding image answer: %w", err)
		}
	default:
		return Answer{}, fmt.Errorf("unknown question type %q", t)
	}
	return a, nil
}

// Display renders the answer as a single string for review screens.
func (a Answer) Display() string {
	switch a.Type {
	case TypeSingle:
		return a.Choice
	case TypeMultiple:
		return strings.Join(a.Choices, ", ")
	case TypeBoolean:
		if a.Bool {
			return BooleanAnswerTrue
		}
		return BooleanAnswerFalse
	case TypeText:
		return a.Text
	case TypeImage:
		return strings.Join(a.Images, ", ")
	}
	return ""
}

// GateValue returns the answer in the string form conditions compare
// against, or "" when the answer type cannot gate other questions.
func (a Answer) GateValue() string {
	switch a.Type {
	case TypeSingle:
		return a.Choice
	case TypeBoolean:
		return a.Display()
	}
	return ""
}
