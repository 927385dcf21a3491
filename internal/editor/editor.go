package editor

import (
	"fmt"

	"github.com/magi8101/form-builder/internal/schema"
)

// Editing operations over a form's question list. Every operation takes the
// current list and returns a fresh one; the input is never mutated, so a
// caller can keep snapshots (e.g. for a future undo history) without copying.
// Operations referencing an unknown question id or an out-of-range option
// index return the list unchanged rather than failing: the UI cannot produce
// such calls, but malformed input must not crash the session.

func clone(qs []schema.Question) []schema.Question {
	next := make([]schema.Question, len(qs))
	copy(next, qs)
	return next
}

func cloneOptions(opts []string) []string {
	next := make([]string, len(opts))
	copy(next, opts)
	return next
}

// AddQuestion appends a new short text question with default fields and a
// freshly generated id.
func AddQuestion(qs []schema.Question) []schema.Question {
	return append(clone(qs), schema.DefaultQuestion(schema.TypeShortText))
}

// UpdateQuestionField replaces a single field on the question matching id.
// Recognized fields are "title", "type", "required", "options" and
// "placeholder". Switching type does not clear now-irrelevant options or
// placeholder; they are simply not rendered. Unknown ids, unknown field
// names and uncoercible values are silent no-ops.
func UpdateQuestionField(qs []schema.Question, id, field string, value interface{}) []schema.Question {
	next := clone(qs)
	i := schema.QuestionList(next).IndexOf(id)
	if i < 0 {
		return next
	}

	q := next[i]
	switch field {
	case "title":
		s, ok := value.(string)
		if !ok {
			return next
		}
		q.Title = s
	case "type":
		s, ok := value.(string)
		if !ok {
			return next
		}
		q.Type = schema.QuestionType(s)
	case "required":
		b, ok := value.(bool)
		if !ok {
			return next
		}
		q.Required = b
	case "placeholder":
		s, ok := value.(string)
		if !ok {
			return next
		}
		q.Placeholder = s
	case "options":
		opts, ok := toStringSlice(value)
		if !ok {
			return next
		}
		q.Options = opts
	default:
		return next
	}

	next[i] = q
	return next
}

// RemoveQuestion deletes the question matching id; no-op if absent.
func RemoveQuestion(qs []schema.Question, id string) []schema.Question {
	next := make([]schema.Question, 0, len(qs))
	for _, q := range qs {
		if q.ID != id {
			next = append(next, q)
		}
	}
	return next
}

// AddOption appends a default option labeled "Option N" where N is the new
// length of the option list, regardless of prior edits to existing labels.
func AddOption(qs []schema.Question, id string) []schema.Question {
	next := clone(qs)
	i := schema.QuestionList(next).IndexOf(id)
	if i < 0 {
		return next
	}
	opts := cloneOptions(next[i].Options)
	next[i].Options = append(opts, fmt.Sprintf("Option %d", len(opts)+1))
	return next
}

// UpdateOption replaces the option at index on the question matching id.
func UpdateOption(qs []schema.Question, id string, index int, value string) []schema.Question {
	next := clone(qs)
	i := schema.QuestionList(next).IndexOf(id)
	if i < 0 || index < 0 || index >= len(next[i].Options) {
		return next
	}
	opts := cloneOptions(next[i].Options)
	opts[index] = value
	next[i].Options = opts
	return next
}

// RemoveOption deletes the option at index on the question matching id.
func RemoveOption(qs []schema.Question, id string, index int) []schema.Question {
	next := clone(qs)
	i := schema.QuestionList(next).IndexOf(id)
	if i < 0 || index < 0 || index >= len(next[i].Options) {
		return next
	}
	opts := cloneOptions(next[i].Options)
	next[i].Options = append(opts[:index], opts[index+1:]...)
	return next
}

// Reorder moves the question at source to destination, preserving the
// relative order of every other question (stable move, not swap). Out of
// bounds indices and equal indices are no-ops.
func Reorder(qs []schema.Question, source, destination int) []schema.Question {
	next := clone(qs)
	if source == destination ||
		source < 0 || source >= len(next) ||
		destination < 0 || destination >= len(next) {
		return next
	}
	moved := next[source]
	next = append(next[:source], next[source+1:]...)

	rest := make([]schema.Question, 0, len(qs))
	rest = append(rest, next[:destination]...)
	rest = append(rest, moved)
	rest = append(rest, next[destination:]...)
	return rest
}

// FormPayload is the editor's handoff shape to storage on save/publish.
type FormPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []schema.Question `json:"questions"`
	UserID      uint              `json:"user_id"`
	Published   bool              `json:"published"`
}

// Serialize packages editor state for persistence. There is deliberately no
// validation gate: a form with zero questions or a blank title may be
// published.
func Serialize(title, description string, qs []schema.Question, userID uint, publish bool) FormPayload {
	return FormPayload{
		Title:       title,
		Description: description,
		Questions:   clone(qs),
		UserID:      userID,
		Published:   publish,
	}
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return cloneOptions(v), true
	case []interface{}:
		opts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			opts = append(opts, s)
		}
		return opts, true
	}
	return nil, false
}
