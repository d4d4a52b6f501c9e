package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeAnswerByType verifies each question type decodes its fixed
// payload shape and renders for review screens.
func TestDecodeAnswerByType(t *testing.T) {
	single, err := DecodeAnswer(TypeSingle, json.RawMessage(`"A"`))
	require.NoError(t, err)
	assert.Equal(t, "A", single.Display())

	multiple, err := DecodeAnswer(TypeMultiple, json.RawMessage(`["A","C"]`))
	require.NoError(t, err)
	assert.Equal(t, "A, C", multiple.Display())

	boolean, err := DecodeAnswer(TypeBoolean, json.RawMessage(`true`))
	require.NoError(t, err)
	assert.Equal(t, BooleanAnswerTrue, boolean.Display())

	text, err := DecodeAnswer(TypeText, json.RawMessage(`"I like building farms"`))
	require.NoError(t, err)
	assert.Equal(t, "I like building farms", text.Display())

	images, err := DecodeAnswer(TypeImage, json.RawMessage(`["a.png","b.png"]`))
	require.NoError(t, err)
	assert.Equal(t, "a.png, b.png", images.Display())
}

// TestDecodeAnswerRejectsWrongShape verifies payloads are never coerced
// across types.
func TestDecodeAnswerRejectsWrongShape(t *testing.T) {
	_, err := DecodeAnswer(TypeSingle, json.RawMessage(`["A"]`))
	assert.Error(t, err, "an array is not a single-choice answer")

	_, err = DecodeAnswer(TypeBoolean, json.RawMessage(`"yes"`))
	assert.Error(t, err, "boolean answers are JSON booleans, not strings")

	_, err = DecodeAnswer(QuestionType("unknown"), json.RawMessage(`"x"`))
	assert.Error(t, err)
}

// TestGateValue verifies only single-choice and boolean answers produce a
// comparable gate value, with booleans normalized to true/false strings.
func TestGateValue(t *testing.T) {
	boolean, err := DecodeAnswer(TypeBoolean, json.RawMessage(`false`))
	require.NoError(t, err)
	assert.Equal(t, BooleanAnswerFalse, boolean.GateValue())

	single, err := DecodeAnswer(TypeSingle, json.RawMessage(`"B"`))
	require.NoError(t, err)
	assert.Equal(t, "B", single.GateValue())

	text, err := DecodeAnswer(TypeText, json.RawMessage(`"hello"`))
	require.NoError(t, err)
	assert.Empty(t, text.GateValue(), "text answers cannot gate")
}
