// Package storage declares persistence contracts for web-owned data.
//
// The only persisted data is the contact inbox: messages submitted through the
// contact form, kept for the site owner and never read back by the site.
package storage
