package contact

// Option is a select choice. LabelKey is a localization key.
type Option struct {
	Value    string
	LabelKey string
}

// BudgetOptions are the project budget ranges.
var BudgetOptions = []Option{
	{Value: "under-5k", LabelKey: "contact.budget.under-5k"},
	{Value: "5k-10k", LabelKey: "contact.budget.5k-10k"},
	{Value: "10k-25k", LabelKey: "contact.budget.10k-25k"},
	{Value: "25k-50k", LabelKey: "contact.budget.25k-50k"},
	{Value: "50k-plus", LabelKey: "contact.budget.50k-plus"},
}

// TimelineOptions are the project timelines.
var TimelineOptions = []Option{
	{Value: "asap", LabelKey: "contact.timeline.asap"},
	{Value: "1-2-weeks", LabelKey: "contact.timeline.1-2-weeks"},
	{Value: "1-month", LabelKey: "contact.timeline.1-month"},
	{Value: "2-3-months", LabelKey: "contact.timeline.2-3-months"},
	{Value: "3-plus-months", LabelKey: "contact.timeline.3-plus-months"},
}

// HasOption reports whether value is one of options.
func HasOption(options []Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}
