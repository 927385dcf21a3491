package render

import (
	"errors"

	"github.com/magi8101/form-builder/internal/schema"
)

// ErrMissingRequired is the one recoverable validation failure: a required
// question with an empty answer at submit time. The caller surfaces it inline
// and keeps the entered answers so the respondent can correct and retry.
var ErrMissingRequired = errors.New("please fill in all required fields")

// NewAnswers returns an answer vector with one empty value per question.
func NewAnswers(n int) schema.AnswerList {
	answers := make(schema.AnswerList, n)
	return answers
}

// SetAnswer replaces the value at index, returning a fresh vector. Out of
// range indices leave the vector unchanged.
func SetAnswer(answers schema.AnswerList, index int, value schema.Answer) schema.AnswerList {
	next := make(schema.AnswerList, len(answers))
	copy(next, answers)
	if index < 0 || index >= len(next) {
		return next
	}
	next[index] = value
	return next
}

// ToggleOption updates the checkbox set at index: selected adds the option to
// the set, deselected removes it. Membership is what matters; toggling order
// does not affect the final set, and a text value previously at the position
// is replaced by a set.
func ToggleOption(answers schema.AnswerList, index int, option string, selected bool) schema.AnswerList {
	if index < 0 || index >= len(answers) {
		next := make(schema.AnswerList, len(answers))
		copy(next, answers)
		return next
	}

	current := answers[index].Selections
	set := make([]string, 0, len(current)+1)
	for _, o := range current {
		if o != option {
			set = append(set, o)
		}
	}
	if selected {
		set = append(set, option)
	}
	return SetAnswer(answers, index, schema.SetAnswer(set...))
}

// Normalize pads or truncates the vector to exactly n positions so that it
// aligns with the form's question list. Missing answers become empty values,
// never omitted positions.
func Normalize(answers schema.AnswerList, n int) schema.AnswerList {
	next := make(schema.AnswerList, n)
	copy(next, answers)
	return next
}

// Validate fails iff at least one required question has an empty-equivalent
// answer (empty string, or empty set for checkbox) at its position. A
// required checkbox question needs a non-empty set. Validation runs only at
// submit time.
func Validate(qs []schema.Question, answers schema.AnswerList) error {
	for i, q := range qs {
		if !q.Required {
			continue
		}
		if i >= len(answers) || answers[i].IsEmpty() {
			return ErrMissingRequired
		}
	}
	return nil
}

// SubmissionPayload is the renderer's handoff shape to storage on submit.
type SubmissionPayload struct {
	FormID  uint              `json:"form_id"`
	Answers schema.AnswerList `json:"answers"`
}

// Submission packages the collected answers for persistence. Call only after
// Validate succeeds.
func Submission(formID uint, answers schema.AnswerList) SubmissionPayload {
	return SubmissionPayload{FormID: formID, Answers: answers}
}
