package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Answer is one submitted value, positionally aligned with a form's question
// list. It is either a single string (text, date, number, email, dropdown,
// multiple choice) or a set of selected options (checkbox). On the wire it is
// a plain JSON string or a JSON array of strings.
type Answer struct {
	Text string
	// Selections is non-nil for set-valued answers. A non-nil empty slice is
	// an empty checkbox set, which is distinct from an empty string only in
	// its serialized shape; both count as empty.
	Selections []string
}

// TextAnswer wraps a single string value.
func TextAnswer(s string) Answer {
	return Answer{Text: s}
}

// SetAnswer wraps a set of selected options.
func SetAnswer(options ...string) Answer {
	if options == nil {
		options = []string{}
	}
	return Answer{Selections: options}
}

// IsEmpty reports whether the answer counts as missing: an empty string or an
// empty selection set.
func (a Answer) IsEmpty() bool {
	if a.Selections != nil {
		return len(a.Selections) == 0
	}
	return a.Text == ""
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Selections != nil {
		return json.Marshal(a.Selections)
	}
	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer{Text: s}
		return nil
	}
	var set []string
	if err := json.Unmarshal(data, &set); err == nil {
		if set == nil {
			set = []string{}
		}
		*a = Answer{Selections: set}
		return nil
	}
	return errors.New("answer must be a string or an array of strings")
}

// AnswerList is one respondent's answer vector, stored as a single jsonb
// document on the responses table. It always has exactly one position per
// question of the form it answers; missing answers are empty values, never
// omitted positions.
type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for answer list")
	}
	return json.Unmarshal(data, l)
}
