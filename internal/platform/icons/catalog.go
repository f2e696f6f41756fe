package icons

import "strings"

// ID is a content icon identifier.
type ID string

const (
	Generic     ID = "generic"
	Code        ID = "code"
	Palette     ID = "palette"
	Smartphone  ID = "smartphone"
	Zap         ID = "zap"
	GitHub      ID = "github"
	LinkedIn    ID = "linkedin"
	Twitter     ID = "twitter"
	Email       ID = "email"
	Phone       ID = "phone"
	Location    ID = "location"
	ArrowUp     ID = "arrow-up"
	Previous    ID = "previous"
	Next        ID = "next"
	Close       ID = "close"
	Menu        ID = "menu"
	ExternalURL ID = "external"
)

// Definition describes an icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Generic, Name: "Generic", Description: "Fallback for unknown identifiers."},
	{ID: Code, Name: "Code", Description: "Clean code value."},
	{ID: Palette, Name: "Palette", Description: "UI and UX design value."},
	{ID: Smartphone, Name: "Smartphone", Description: "Responsive design value."},
	{ID: Zap, Name: "Zap", Description: "Performance value."},
	{ID: GitHub, Name: "GitHub", Description: "GitHub profile link."},
	{ID: LinkedIn, Name: "LinkedIn", Description: "LinkedIn profile link."},
	{ID: Twitter, Name: "Twitter", Description: "Twitter profile link."},
	{ID: Email, Name: "Email", Description: "Email contact channel."},
	{ID: Phone, Name: "Phone", Description: "Phone contact channel."},
	{ID: Location, Name: "Location", Description: "Location contact channel."},
	{ID: ArrowUp, Name: "Arrow Up", Description: "Scroll to top button."},
	{ID: Previous, Name: "Previous", Description: "Carousel previous control."},
	{ID: Next, Name: "Next", Description: "Carousel next control."},
	{ID: Close, Name: "Close", Description: "Dismiss notification control."},
	{ID: Menu, Name: "Menu", Description: "Mobile navigation toggle."},
	{ID: ExternalURL, Name: "External Link", Description: "Live demo link."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Parse maps a content identifier onto a cataloged ID, ignoring case. Unknown
// identifiers resolve to Generic.
func Parse(raw string) ID {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "mail" {
		raw = string(Email)
	}
	for _, def := range catalog {
		if string(def.ID) == raw {
			return def.ID
		}
	}
	return Generic
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
