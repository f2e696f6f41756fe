// Package flash carries a one-time notification across a post/redirect/get.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rkprasad/portfolio/internal/services/web/platform/notification"
	"github.com/rkprasad/portfolio/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding the pending notification.
const CookieName = "rk_flash"

// Write stores a notification cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, n notification.Notification) {
	WriteWithPolicy(w, r, n, requestmeta.SchemePolicy{})
}

// WriteWithPolicy stores a notification cookie for the next page render.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, n notification.Notification, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	normalized, ok := notification.Normalize(n)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notification and expires the cookie, so a
// notification is shown at most once.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (notification.Notification, bool) {
	if r == nil {
		return notification.Notification{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return notification.Notification{}, false
	}
	if w != nil {
		Clear(w, r)
	}
	return decode(cookie.Value)
}

// Clear expires any pending notification cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decode(raw string) (notification.Notification, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return notification.Notification{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return notification.Notification{}, false
	}
	var n notification.Notification
	if err := json.Unmarshal(decoded, &n); err != nil {
		return notification.Notification{}, false
	}
	return notification.Normalize(n)
}
