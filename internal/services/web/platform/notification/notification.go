// Package notification models the toast notices shown after user actions.
package notification

import (
	"strings"
	"time"
)

// DefaultAutoClose is how long a notice stays on screen by default.
const DefaultAutoClose = 5 * time.Second

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	default:
		return false
	}
}

// Notification is one toast. Title and Message hold localization keys or
// literal copy; the renderer localizes keys it knows.
type Notification struct {
	Kind      Kind          `json:"kind"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	AutoClose time.Duration `json:"auto_close,omitempty"`
}

// Success builds a success notice.
func Success(title, message string) Notification {
	return Notification{Kind: KindSuccess, Title: title, Message: message, AutoClose: DefaultAutoClose}
}

// Error builds an error notice.
func Error(title, message string) Notification {
	return Notification{Kind: KindError, Title: title, Message: message, AutoClose: DefaultAutoClose}
}

// Normalize trims fields, lowercases the kind and fills the default auto
// close. The bool is false when the notice has no title or an unknown kind.
func Normalize(n Notification) (Notification, bool) {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	if n.Title == "" || !n.Kind.Valid() {
		return Notification{}, false
	}
	if n.AutoClose <= 0 {
		n.AutoClose = DefaultAutoClose
	}
	return n, true
}

// AutoCloseMillis is the auto close delay for client scripts.
func (n Notification) AutoCloseMillis() int64 {
	if n.AutoClose <= 0 {
		return DefaultAutoClose.Milliseconds()
	}
	return n.AutoClose.Milliseconds()
}
