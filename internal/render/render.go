package render

import (
	"github.com/magi8101/form-builder/internal/schema"
)

// ControlKind identifies the input affordance a question renders as.
type ControlKind string

const (
	ControlTextInput     ControlKind = "text_input"
	ControlTextArea      ControlKind = "text_area"
	ControlRadioGroup    ControlKind = "radio_group"
	ControlCheckboxGroup ControlKind = "checkbox_group"
	ControlSelect        ControlKind = "select"
	ControlDateInput     ControlKind = "date_input"
	ControlNumberInput   ControlKind = "number_input"
	ControlEmailInput    ControlKind = "email_input"
)

// Control describes one rendered input, bound to the answer position matching
// its index in the plan.
type Control struct {
	QuestionID  string      `json:"question_id"`
	Kind        ControlKind `json:"kind"`
	Label       string      `json:"label"`
	Required    bool        `json:"required"`
	Options     []string    `json:"options,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// Plan maps a form's question list to its ordered control list. Options and
// placeholder absent on a stored question are treated as empty, never as an
// error; option lists only surface on option-bearing controls and
// placeholders only on placeholder-bearing ones.
func Plan(qs []schema.Question) []Control {
	controls := make([]Control, 0, len(qs))
	for _, q := range qs {
		c := Control{
			QuestionID: q.ID,
			Kind:       kindFor(q.Type),
			Label:      q.Title,
			Required:   q.Required,
		}
		if q.Type.OptionBearing() {
			c.Options = q.Options
		}
		if q.Type.PlaceholderBearing() {
			c.Placeholder = q.Placeholder
		}
		controls = append(controls, c)
	}
	return controls
}

func kindFor(t schema.QuestionType) ControlKind {
	switch t {
	case schema.TypeLongText:
		return ControlTextArea
	case schema.TypeMultipleChoice:
		return ControlRadioGroup
	case schema.TypeCheckbox:
		return ControlCheckboxGroup
	case schema.TypeDropdown:
		return ControlSelect
	case schema.TypeDate:
		return ControlDateInput
	case schema.TypeNumber:
		return ControlNumberInput
	case schema.TypeEmail:
		return ControlEmailInput
	default:
		return ControlTextInput
	}
}
