package wall

import (
	"time"
	"unicode/utf8"
)

// ===========================
// Hope wall message
// ===========================

// MessageIDLength is the generated identifier length for wall messages.
const MessageIDLength = 8

// MaxMessageLength caps the testimonial text, counted in characters so
// non-ASCII messages get the same limit the client enforces.
const MaxMessageLength = 250

// AnonymousName substitutes a missing display name.
const AnonymousName = "Anonymous"

// Message is a public support testimonial. Unapproved messages are excluded
// from the public listing until moderated.
type Message struct {
	id          string
	displayName string
	text        string
	language    string
	createdAt   time.Time
	approved    bool
}

// NewMessage creates an unapproved message awaiting moderation. An empty
// display name becomes AnonymousName.
func NewMessage(id, displayName, text, language string, createdAt time.Time) (*Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if length := utf8.RuneCountInString(text); length > MaxMessageLength {
		return nil, ErrMessageTooLong.WithContext("length", length)
	}
	if displayName == "" {
		displayName = AnonymousName
	}
	return &Message{
		id:          id,
		displayName: displayName,
		text:        text,
		language:    language,
		createdAt:   createdAt,
		approved:    false,
	}, nil
}

// ReconstructMessage rebuilds a message loaded from storage.
func ReconstructMessage(id, displayName, text, language string, createdAt time.Time, approved bool) *Message {
	return &Message{
		id:          id,
		displayName: displayName,
		text:        text,
		language:    language,
		createdAt:   createdAt,
		approved:    approved,
	}
}

func (m *Message) ID() string           { return m.id }
func (m *Message) DisplayName() string  { return m.displayName }
func (m *Message) Text() string         { return m.text }
func (m *Message) Language() string     { return m.language }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
func (m *Message) Approved() bool       { return m.approved }

// Approve marks the message as publicly visible.
func (m *Message) Approve() {
	m.approved = true
}

// DefaultMessages are the six built-in wall entries, always listed before
// persisted messages regardless of any stored approval flag. Timestamps are
// relative to now so they read as recent.
func DefaultMessages(now time.Time) []*Message {
	day := 24 * time.Hour
	build := func(id, name, text string, age time.Duration) *Message {
		return ReconstructMessage(id, name, text, "en", now.Add(-age), true)
	}
	return []*Message{
		build("default-msg-1", AnonymousName, "You are stronger than you know. Keep moving forward, one step at a time.", 5*day),
		build("default-msg-2", "Hope Giver", "Your courage inspires us all. You are not alone in this journey.", 4*day),
		build("default-msg-3", "Community Supporter", "We stand with you. Your story matters, and your future holds so much hope.", 2*day),
		build("default-msg-4", AnonymousName, "Your children will see your strength and learn from your courage. You are their hero.", 1*day),
		build("default-msg-5", "Hope Warrior", "Your resilience is inspiring. Keep fighting for the life you deserve.", 8*day),
		build("default-msg-6", "Friend of the House", "Every sunrise is proof that new beginnings are possible. We believe in yours.", 6*day),
	}
}
