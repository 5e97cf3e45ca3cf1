package payload

import (
	"slices"
	"strings"
)

// String is a mutable sequence of payloads, rich text in other words.
// Lookups are by payload identity.
type String struct {
	Payloads []Payload
}

// NewString returns sequence made of given payloads.
func NewString(payloads ...Payload) *String {
	return &String{Payloads: payloads}
}

// Plain returns sequence with a single text payload.
func Plain(text string) *String {
	return NewString(NewText(text))
}

// Len returns number of payloads, nil sequence is empty.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Payloads)
}

// IndexOf returns index of the given payload or -1.
func (s *String) IndexOf(p Payload) int {
	for i, cur := range s.Payloads {
		if cur == p {
			return i
		}
	}
	return -1
}

// Insert puts payloads before the one at index i. Index is clamped to the
// sequence bounds.
func (s *String) Insert(i int, payloads ...Payload) {
	i = max(0, min(i, len(s.Payloads)))
	s.Payloads = slices.Insert(s.Payloads, i, payloads...)
}

// Append adds payloads to the end.
func (s *String) Append(payloads ...Payload) {
	s.Payloads = append(s.Payloads, payloads...)
}

// Remove deletes the first occurrence of payload, reporting whether it was
// found.
func (s *String) Remove(p Payload) bool {
	i := s.IndexOf(p)
	if i < 0 {
		return false
	}
	s.Payloads = slices.Delete(s.Payloads, i, i+1)
	return true
}

// Reset replaces content of the sequence.
func (s *String) Reset(payloads ...Payload) {
	s.Payloads = append(s.Payloads[:0:0], payloads...)
}

// TextValue returns concatenated text payloads, ignoring everything else.
func (s *String) TextValue() string {
	var b strings.Builder
	for _, p := range s.Payloads {
		if t, ok := p.(*Text); ok {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

// String returns markup representation of the sequence.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range s.Payloads {
		b.WriteString(p.String())
	}
	return b.String()
}
