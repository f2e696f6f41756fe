package templates

import (
	webi18n "github.com/rkprasad/portfolio/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templates.
type Localizer = webi18n.Localizer

// T returns a translated string, or the key when loc is nil.
func T(loc Localizer, key message.Reference, args ...any) string {
	return webi18n.T(loc, key, args...)
}
