package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type QuestionType string

const (
	TypeShortText      QuestionType = "short_text"
	TypeLongText       QuestionType = "long_text"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeCheckbox       QuestionType = "checkbox"
	TypeDropdown       QuestionType = "dropdown"
	TypeDate           QuestionType = "date"
	TypeNumber         QuestionType = "number"
	TypeEmail          QuestionType = "email"
)

// QuestionTypes is the closed set of supported types, in display order.
var QuestionTypes = []QuestionType{
	TypeShortText,
	TypeLongText,
	TypeMultipleChoice,
	TypeCheckbox,
	TypeDropdown,
	TypeDate,
	TypeNumber,
	TypeEmail,
}

func (t QuestionType) Valid() bool {
	for _, qt := range QuestionTypes {
		if t == qt {
			return true
		}
	}
	return false
}

// OptionBearing reports whether the type carries a list of selectable options.
func (t QuestionType) OptionBearing() bool {
	return t == TypeMultipleChoice || t == TypeCheckbox || t == TypeDropdown
}

// PlaceholderBearing reports whether the type's input supports a hint string.
func (t QuestionType) PlaceholderBearing() bool {
	return t == TypeShortText || t == TypeLongText || t == TypeNumber || t == TypeEmail
}

// Question is one field definition within a form's schema. Options are only
// meaningful for option-bearing types and Placeholder only for
// placeholder-bearing ones; stale values left behind by a type switch are
// kept but ignored by the renderer.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// NewID returns a fresh question identifier. Identifiers are never reused
// within a form, even after the question they belonged to is deleted.
func NewID() string {
	return "q-" + uuid.NewString()
}

// DefaultQuestion builds a question with type-appropriate defaults:
// option-bearing types get one seed option, the rest start empty.
func DefaultQuestion(t QuestionType) Question {
	q := Question{
		ID:       NewID(),
		Type:     t,
		Title:    "New Question",
		Required: false,
	}
	if t.OptionBearing() {
		q.Options = []string{"Option 1"}
	}
	return q
}

// QuestionList is the ordered question schema of a form, stored as a single
// jsonb document on the forms table.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionList{}
	}
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for question list")
	}
	return json.Unmarshal(data, l)
}

// IndexOf returns the position of the question with the given id, or -1.
func (l QuestionList) IndexOf(id string) int {
	for i, q := range l {
		if q.ID == id {
			return i
		}
	}
	return -1
}
