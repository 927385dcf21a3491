package editor

import (
	"encoding/json"
	"testing"

	"github.com/magi8101/form-builder/internal/schema"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []schema.Question {
	return []schema.Question{
		{ID: "q-a", Type: schema.TypeShortText, Title: "Name", Required: true, Placeholder: "Enter your name"},
		{ID: "q-b", Type: schema.TypeCheckbox, Title: "Colors", Options: []string{"Red", "Blue"}},
		{ID: "q-c", Type: schema.TypeNumber, Title: "Age"},
	}
}

func TestAddQuestionAppendsDefault(t *testing.T) {
	qs := sampleQuestions()
	next := AddQuestion(qs)

	require.Len(t, next, 4)
	added := next[3]
	assert.Equal(t, schema.TypeShortText, added.Type)
	assert.Equal(t, "New Question", added.Title)
	assert.False(t, added.Required)
	assert.NotEmpty(t, added.ID)

	if diff := cmp.Diff(sampleQuestions(), next[:3]); diff != "" {
		t.Errorf("existing questions changed (-want +got):\n%s", diff)
	}
}

func TestRemoveThenAddPreservesOthers(t *testing.T) {
	qs := sampleQuestions()
	next := AddQuestion(RemoveQuestion(qs, "q-b"))

	require.Len(t, next, len(qs))
	assert.Equal(t, "q-a", next[0].ID)
	assert.Equal(t, "q-c", next[1].ID)
	assert.NotEqual(t, "q-b", next[2].ID, "deleted ids are never reused")

	if diff := cmp.Diff(qs[0], next[0]); diff != "" {
		t.Errorf("untouched question changed (-want +got):\n%s", diff)
	}
}

func TestUpdateQuestionField(t *testing.T) {
	qs := sampleQuestions()

	next := UpdateQuestionField(qs, "q-a", "title", "Full name")
	assert.Equal(t, "Full name", next[0].Title)
	assert.Equal(t, "Name", qs[0].Title, "input list is never mutated")

	next = UpdateQuestionField(qs, "q-a", "required", false)
	assert.False(t, next[0].Required)

	next = UpdateQuestionField(qs, "q-a", "placeholder", "Your name")
	assert.Equal(t, "Your name", next[0].Placeholder)

	next = UpdateQuestionField(qs, "q-b", "options", []string{"Green"})
	assert.Equal(t, []string{"Green"}, next[1].Options)

	// values arriving through JSON decode as []interface{}
	next = UpdateQuestionField(qs, "q-b", "options", []interface{}{"X", "Y"})
	assert.Equal(t, []string{"X", "Y"}, next[1].Options)
}

func TestUpdateQuestionFieldTypeSwitchKeepsStaleFields(t *testing.T) {
	qs := sampleQuestions()
	next := UpdateQuestionField(qs, "q-b", "type", "short_text")

	assert.Equal(t, schema.TypeShortText, next[1].Type)
	assert.Equal(t, []string{"Red", "Blue"}, next[1].Options, "type switch does not clear options")
}

func TestUpdateQuestionFieldNoOps(t *testing.T) {
	qs := sampleQuestions()

	for _, tc := range []struct {
		name string
		got  []schema.Question
	}{
		{"unknown id", UpdateQuestionField(qs, "q-zzz", "title", "x")},
		{"unknown field", UpdateQuestionField(qs, "q-a", "color", "red")},
		{"wrong value type", UpdateQuestionField(qs, "q-a", "title", 42)},
		{"mixed options", UpdateQuestionField(qs, "q-b", "options", []interface{}{"ok", 1})},
	} {
		if diff := cmp.Diff(qs, tc.got); diff != "" {
			t.Errorf("%s: list changed (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestRemoveQuestionUnknownIDIsNoOp(t *testing.T) {
	qs := sampleQuestions()
	next := RemoveQuestion(qs, "q-zzz")
	if diff := cmp.Diff(qs, next); diff != "" {
		t.Errorf("list changed (-want +got):\n%s", diff)
	}
}

func TestAddOptionLabelsByPosition(t *testing.T) {
	qs := []schema.Question{{ID: "q-a", Type: schema.TypeDropdown}}

	qs = AddOption(qs, "q-a")
	qs = AddOption(qs, "q-a")
	assert.Equal(t, []string{"Option 1", "Option 2"}, qs[0].Options)

	// renaming an existing option does not change the next default label
	qs = UpdateOption(qs, "q-a", 0, "Totally renamed")
	qs = AddOption(qs, "q-a")
	assert.Equal(t, []string{"Totally renamed", "Option 2", "Option 3"}, qs[0].Options)
}

func TestOptionIndexGuards(t *testing.T) {
	qs := sampleQuestions()

	for _, tc := range []struct {
		name string
		got  []schema.Question
	}{
		{"update out of range", UpdateOption(qs, "q-b", 5, "x")},
		{"update negative", UpdateOption(qs, "q-b", -1, "x")},
		{"remove out of range", RemoveOption(qs, "q-b", 2)},
		{"unknown id", AddOption(qs, "q-zzz")},
	} {
		if diff := cmp.Diff(qs, tc.got); diff != "" {
			t.Errorf("%s: list changed (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestRemoveOption(t *testing.T) {
	qs := sampleQuestions()
	next := RemoveOption(qs, "q-b", 0)
	assert.Equal(t, []string{"Blue"}, next[1].Options)
	assert.Equal(t, []string{"Red", "Blue"}, qs[1].Options)
}

func TestReorderStableMove(t *testing.T) {
	qs := sampleQuestions()

	next := Reorder(qs, 0, 2)
	assert.Equal(t, []string{"q-b", "q-c", "q-a"}, ids(next))

	// moving back restores the original order
	back := Reorder(next, 2, 0)
	if diff := cmp.Diff(qs, back); diff != "" {
		t.Errorf("reorder involution failed (-want +got):\n%s", diff)
	}
}

func TestReorderGuards(t *testing.T) {
	qs := sampleQuestions()

	for _, tc := range []struct {
		name string
		got  []schema.Question
	}{
		{"equal indices", Reorder(qs, 1, 1)},
		{"source out of bounds", Reorder(qs, 3, 0)},
		{"destination out of bounds", Reorder(qs, 0, 3)},
		{"negative source", Reorder(qs, -1, 1)},
	} {
		if diff := cmp.Diff(qs, tc.got); diff != "" {
			t.Errorf("%s: list changed (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestSerialize(t *testing.T) {
	qs := sampleQuestions()
	payload := Serialize("Survey", "About you", qs, 7, true)

	assert.Equal(t, "Survey", payload.Title)
	assert.Equal(t, "About you", payload.Description)
	assert.Equal(t, uint(7), payload.UserID)
	assert.True(t, payload.Published)
	if diff := cmp.Diff(qs, payload.Questions); diff != "" {
		t.Errorf("questions changed (-want +got):\n%s", diff)
	}

	// publishing an empty form is allowed, deliberately
	empty := Serialize("", "", nil, 7, true)
	assert.True(t, empty.Published)
	assert.Empty(t, empty.Questions)
}

func TestSerializeJSONRoundTrip(t *testing.T) {
	payload := Serialize("Survey", "About you", sampleQuestions(), 7, false)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded FormPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(payload.Questions, decoded.Questions); diff != "" {
		t.Errorf("question list did not survive the round trip (-want +got):\n%s", diff)
	}
}

func TestEditorScenario(t *testing.T) {
	qs := []schema.Question{{
		ID:          "q-1",
		Type:        schema.TypeShortText,
		Title:       "What is your name?",
		Required:    true,
		Placeholder: "Enter your name",
	}}

	qs = AddQuestion(qs)
	require.Len(t, qs, 2)
	second := qs[1].ID

	qs = UpdateQuestionField(qs, second, "type", "checkbox")
	qs = AddOption(qs, second)
	qs = AddOption(qs, second)
	assert.Equal(t, []string{"Option 1", "Option 2"}, qs[1].Options)

	qs = Reorder(qs, 0, 1)
	assert.Equal(t, second, qs[0].ID)

	payload := Serialize("My Form", "", qs, 1, false)
	assert.Equal(t, schema.TypeCheckbox, payload.Questions[0].Type)
}

func ids(qs []schema.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
