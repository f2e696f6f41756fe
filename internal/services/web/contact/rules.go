package contact

import "regexp"

// Counter limits shown under the subject and message inputs.
const (
	SubjectMaxLength = 100
	MessageMaxLength = 1000
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Rule constrains one field. Message fields hold localization keys.
type Rule struct {
	Field       Field
	Required    string
	Min         int
	MinMessage  string
	Max         int
	MaxMessage  string
	Pattern     *regexp.Regexp
	PatternText string
	Options     []Option
	OptionsText string
}

// Rules lists the field rules in form order. Checks run required, max, min,
// pattern, options and stop at the first failure.
var Rules = []Rule{
	{
		Field:      FieldName,
		Required:   "contact.validation.name_required",
		Min:        2,
		MinMessage: "contact.validation.name_min",
		Max:        50,
		MaxMessage: "contact.validation.name_max",
	},
	{
		Field:       FieldEmail,
		Required:    "contact.validation.email_required",
		Pattern:     emailPattern,
		PatternText: "contact.validation.email_invalid",
		Max:         100,
		MaxMessage:  "contact.validation.email_max",
	},
	{
		Field:      FieldSubject,
		Required:   "contact.validation.subject_required",
		Min:        3,
		MinMessage: "contact.validation.subject_min",
		Max:        SubjectMaxLength,
		MaxMessage: "contact.validation.subject_max",
	},
	{
		Field:      FieldMessage,
		Required:   "contact.validation.message_required",
		Min:        10,
		MinMessage: "contact.validation.message_min",
		Max:        MessageMaxLength,
		MaxMessage: "contact.validation.message_max",
	},
	{
		Field:       FieldBudget,
		Options:     BudgetOptions,
		OptionsText: "contact.validation.budget_invalid",
	},
	{
		Field:       FieldTimeline,
		Options:     TimelineOptions,
		OptionsText: "contact.validation.timeline_invalid",
	},
}

// Errors maps a field to the localization key of its first failed rule.
type Errors map[Field]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Check returns the localization key of the first failed check, or "".
func (r Rule) Check(value string) string {
	if value == "" {
		return r.Required
	}
	length := Length(value)
	if r.Max > 0 && length > r.Max {
		return r.MaxMessage
	}
	if r.Min > 0 && length < r.Min {
		return r.MinMessage
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return r.PatternText
	}
	if len(r.Options) > 0 && !HasOption(r.Options, value) {
		return r.OptionsText
	}
	return ""
}

// Validate applies Rules to form.
func Validate(form Form) Errors {
	errs := Errors{}
	for _, rule := range Rules {
		if key := rule.Check(form.Value(rule.Field)); key != "" {
			errs[rule.Field] = key
		}
	}
	return errs
}
