package storage

import (
	"context"
	"time"
)

// ContactMessage is one accepted contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Budget    string
	Timeline  string
	ClientIP  string
	CreatedAt time.Time
}

// Inbox records contact messages.
type Inbox interface {
	RecordContactMessage(ctx context.Context, message ContactMessage) error
}

// Store is the lifecycle contract of the inbox persistence adapter.
type Store interface {
	Inbox
	CountContactMessages(ctx context.Context) (int, error)
	Close() error
}
