// Package i18n negotiates the request language and localizes site copy.
package i18n

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "rk_lang"
)

var supported = []language.Tag{language.English, language.BrazilianPortuguese}

var matcher = language.NewMatcher(supported)

// Localizer provides translated strings for templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Match maps any tag onto the closest supported one.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses raw and maps it onto a supported tag.
func ParseTag(raw string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return language.Und, false
	}
	return Match(tag), true
}

// ResolveTag determines the request language from the query parameter, then
// the preference cookie, then Accept-Language. The bool reports whether the
// query parameter chose it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if raw := r.URL.Query().Get(LangParam); raw != "" {
			if tag, ok := ParseTag(raw); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns the request printer and language, persisting an
// explicit ?lang choice.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Href   string
	Active bool
}

// LanguageOptions lists the supported languages with switch links that keep
// the current path and query.
func LanguageOptions(loc Localizer, path string, rawQuery string, active string) []LanguageOption {
	activeTag, _ := ParseTag(active)
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(loc, labelKey(tag)),
			Href:   LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path string, rawQuery string, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func labelKey(tag language.Tag) string {
	if tag == language.BrazilianPortuguese {
		return "lang.pt_br"
	}
	return "lang.en"
}

func register(tag language.Tag, messages map[string]string) {
	for key, value := range messages {
		if err := message.SetString(tag, key, value); err != nil {
			panic(fmt.Sprintf("register %s message %q: %v", tag, key, err))
		}
	}
}

func init() {
	register(language.English, englishMessages)
	register(language.BrazilianPortuguese, portugueseMessages)
}
