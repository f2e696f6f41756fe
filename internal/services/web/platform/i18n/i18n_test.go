package i18n

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestCatalogsShareKeys(t *testing.T) {
	t.Parallel()

	keys := func(m map[string]string) []string {
		out := make([]string, 0, len(m))
		for key := range m {
			out = append(out, key)
		}
		sort.Strings(out)
		return out
	}
	if diff := cmp.Diff(keys(englishMessages), keys(portugueseMessages)); diff != "" {
		t.Fatalf("catalog keys differ (-en +pt-BR):\n%s", diff)
	}
}

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.English},
		{name: "query", target: "/?lang=pt-BR", want: language.BrazilianPortuguese, wantPersist: true},
		{name: "cookie", target: "/", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "query beats cookie", target: "/?lang=en", cookie: "pt-BR", want: language.English, wantPersist: true},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "unsupported accept", target: "/", accept: "ja", want: language.English},
		{name: "bad query falls through", target: "/?lang=!!", cookie: "pt-BR", want: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want || persist != tc.wantPersist {
				t.Fatalf("ResolveTag() = (%v, %v), want (%v, %v)", got, persist, tc.want, tc.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	printer, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if got := printer.Sprintf("nav.about"); got != "Sobre" {
		t.Fatalf("nav.about = %q, want %q", got, "Sobre")
	}
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil || cookie.Name != LangCookieName || cookie.Value != "pt-BR" {
		t.Fatalf("Set-Cookie = %v, %v", cookie, err)
	}
}

func TestEnglishValidationCopy(t *testing.T) {
	t.Parallel()

	p := Printer(language.English)
	if got := p.Sprintf("contact.validation.email_invalid"); got != "Invalid email address" {
		t.Fatalf("email_invalid = %q", got)
	}
	if got := p.Sprintf("contact.counter", "12", "100"); got != "12/100 characters" {
		t.Fatalf("counter = %q", got)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "nav.home"); got != "nav.home" {
		t.Fatalf("T(nil) = %q", got)
	}
	if got := T(nil, "%d items", 3); got != "3 items" {
		t.Fatalf("T(nil, args) = %q", got)
	}
	if got := T(nil, message.Key("nav.home", "Home")); got != "" {
		t.Fatalf("T(nil, key reference) = %q, want empty", got)
	}
	if got := T(Printer(language.English), message.Key("nav.home", "Home")); got != "Home" {
		t.Fatalf("T(en, key reference) = %q, want Home", got)
	}
}

func TestCountsRenderWithoutDigitGrouping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     language.Tag
		counter string
		rights  string
	}{
		{tag: language.English, counter: "0/1000 characters", rights: "© 2026 RK Prasad. All rights reserved."},
		{tag: language.BrazilianPortuguese, counter: "0/1000 caracteres", rights: "© 2026 RK Prasad. Todos os direitos reservados."},
	}
	for _, tc := range tests {
		loc := Printer(tc.tag)
		if got := T(loc, "contact.counter", "0", "1000"); got != tc.counter {
			t.Fatalf("%s counter = %q, want %q", tc.tag, got, tc.counter)
		}
		if got := T(loc, "footer.rights", "2026", "RK Prasad"); got != tc.rights {
			t.Fatalf("%s rights = %q, want %q", tc.tag, got, tc.rights)
		}
	}
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(Printer(language.English), "/projects", "category=Frontend", "pt-BR")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %v/%v", options[0].Active, options[1].Active)
	}
	if options[1].Href != "/projects?category=Frontend&lang=pt-BR" {
		t.Fatalf("href = %q", options[1].Href)
	}
}
