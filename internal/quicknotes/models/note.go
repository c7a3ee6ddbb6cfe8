// Package models defines the client-side data types: notes, drafts, and the
// authenticated session.
package models

import "time"

// Note is a single text note as the backend stores it. ID and CreatedAt are
// assigned by the backend and never change after creation.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

// Draft is the transient, unsaved title/content pair being edited. It exists
// only in memory and is reset after a successful submit or a cancel.
type Draft struct {
	Title   string
	Content string
}

func (d Draft) IsEmpty() bool {
	return d.Title == "" && d.Content == ""
}

// Session is the authenticated user context. A nil *Session means no user is
// signed in.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the backend token backing this session has passed
// its expiry. A zero ExpiresAt means the backend issued no expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
