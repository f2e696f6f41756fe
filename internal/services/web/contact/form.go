// Package contact implements the contact form: field rules, option lists,
// per-client rate limiting and the simulated submission.
package contact

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field names a form input. The value doubles as the HTML name attribute.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldSubject  Field = "subject"
	FieldMessage  Field = "message"
	FieldBudget   Field = "budget"
	FieldTimeline Field = "timeline"
)

// Fields lists the inputs in form order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage, FieldBudget, FieldTimeline}

// Form holds submitted values.
type Form struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Budget   string
	Timeline string
}

// FormFromValues reads a form from posted values, trimming surrounding
// whitespace.
func FormFromValues(values url.Values) Form {
	get := func(field Field) string {
		return strings.TrimSpace(values.Get(string(field)))
	}
	return Form{
		Name:     get(FieldName),
		Email:    get(FieldEmail),
		Subject:  get(FieldSubject),
		Message:  get(FieldMessage),
		Budget:   get(FieldBudget),
		Timeline: get(FieldTimeline),
	}
}

// Value returns the value of field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	case FieldBudget:
		return f.Budget
	case FieldTimeline:
		return f.Timeline
	default:
		return ""
	}
}

// Length counts characters, not bytes.
func Length(value string) int {
	return utf8.RuneCountInString(value)
}
