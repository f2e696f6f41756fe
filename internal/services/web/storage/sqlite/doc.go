// Package sqlite provides the contact inbox adapter backed by SQLite.
package sqlite
