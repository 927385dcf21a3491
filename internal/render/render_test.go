package render

import (
	"testing"

	"github.com/magi8101/form-builder/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanControlKinds(t *testing.T) {
	kinds := map[schema.QuestionType]ControlKind{
		schema.TypeShortText:      ControlTextInput,
		schema.TypeLongText:       ControlTextArea,
		schema.TypeMultipleChoice: ControlRadioGroup,
		schema.TypeCheckbox:       ControlCheckboxGroup,
		schema.TypeDropdown:       ControlSelect,
		schema.TypeDate:           ControlDateInput,
		schema.TypeNumber:         ControlNumberInput,
		schema.TypeEmail:          ControlEmailInput,
	}

	for qt, want := range kinds {
		plan := Plan([]schema.Question{{ID: "q-1", Type: qt, Title: "Q"}})
		require.Len(t, plan, 1)
		assert.Equal(t, want, plan[0].Kind, "kind for %s", qt)
	}
}

func TestPlanFieldScoping(t *testing.T) {
	// stale options on a text question and a stale placeholder on a choice
	// question are not rendered
	plan := Plan([]schema.Question{
		{ID: "q-1", Type: schema.TypeShortText, Title: "Name", Options: []string{"stale"}, Placeholder: "Your name"},
		{ID: "q-2", Type: schema.TypeDropdown, Title: "Pick", Options: []string{"A", "B"}, Placeholder: "stale"},
	})

	require.Len(t, plan, 2)
	assert.Empty(t, plan[0].Options)
	assert.Equal(t, "Your name", plan[0].Placeholder)
	assert.Equal(t, []string{"A", "B"}, plan[1].Options)
	assert.Empty(t, plan[1].Placeholder)
}

func TestPlanMissingOptionsAreEmptyNotError(t *testing.T) {
	plan := Plan([]schema.Question{{ID: "q-1", Type: schema.TypeCheckbox, Title: "Pick"}})
	require.Len(t, plan, 1)
	assert.Empty(t, plan[0].Options)
}

func TestNewAnswers(t *testing.T) {
	answers := NewAnswers(3)
	require.Len(t, answers, 3)
	for _, a := range answers {
		assert.True(t, a.IsEmpty())
	}
}

func TestSetAnswer(t *testing.T) {
	answers := NewAnswers(2)
	next := SetAnswer(answers, 1, schema.TextAnswer("5"))

	assert.Equal(t, "5", next[1].Text)
	assert.True(t, answers[1].IsEmpty(), "input vector is never mutated")

	// out of range writes are dropped
	same := SetAnswer(answers, 9, schema.TextAnswer("x"))
	for _, a := range same {
		assert.True(t, a.IsEmpty())
	}
}

func TestToggleOptionSetMembership(t *testing.T) {
	answers := NewAnswers(1)

	answers = ToggleOption(answers, 0, "A", true)
	assert.Equal(t, []string{"A"}, answers[0].Selections)

	answers = ToggleOption(answers, 0, "B", true)
	assert.Equal(t, []string{"A", "B"}, answers[0].Selections)

	answers = ToggleOption(answers, 0, "A", false)
	assert.Equal(t, []string{"B"}, answers[0].Selections)

	// toggling the same option twice is idempotent on membership
	answers = ToggleOption(answers, 0, "B", true)
	assert.Equal(t, []string{"B"}, answers[0].Selections)
}

func TestNormalize(t *testing.T) {
	short := Normalize(schema.AnswerList{schema.TextAnswer("x")}, 3)
	require.Len(t, short, 3)
	assert.Equal(t, "x", short[0].Text)
	assert.True(t, short[2].IsEmpty())

	long := Normalize(schema.AnswerList{schema.TextAnswer("a"), schema.TextAnswer("b")}, 1)
	require.Len(t, long, 1)
	assert.Equal(t, "a", long[0].Text)
}

func TestValidateRequiredAnswers(t *testing.T) {
	questions := []schema.Question{
		{ID: "q-1", Type: schema.TypeShortText, Title: "Name", Required: true},
		{ID: "q-2", Type: schema.TypeNumber, Title: "Age", Required: false},
	}

	err := Validate(questions, schema.AnswerList{schema.TextAnswer(""), schema.TextAnswer("5")})
	assert.ErrorIs(t, err, ErrMissingRequired)

	err = Validate(questions, schema.AnswerList{schema.TextAnswer("Alice"), schema.TextAnswer("")})
	assert.NoError(t, err)
}

func TestValidateRequiredCheckboxNeedsNonEmptySet(t *testing.T) {
	questions := []schema.Question{
		{ID: "q-1", Type: schema.TypeCheckbox, Title: "Pick", Required: true, Options: []string{"A", "B"}},
	}

	assert.ErrorIs(t, Validate(questions, schema.AnswerList{schema.SetAnswer()}), ErrMissingRequired)
	assert.NoError(t, Validate(questions, schema.AnswerList{schema.SetAnswer("A")}))
}

func TestValidateShortVector(t *testing.T) {
	questions := []schema.Question{
		{ID: "q-1", Type: schema.TypeShortText, Required: false},
		{ID: "q-2", Type: schema.TypeShortText, Required: true},
	}

	assert.ErrorIs(t, Validate(questions, schema.AnswerList{schema.TextAnswer("hi")}), ErrMissingRequired)
}

func TestSubmission(t *testing.T) {
	answers := schema.AnswerList{schema.TextAnswer("Alice"), schema.SetAnswer("A")}
	payload := Submission(42, answers)

	assert.Equal(t, uint(42), payload.FormID)
	assert.Equal(t, answers, payload.Answers)
}
