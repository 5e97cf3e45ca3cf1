// Package compose turns resolved tag properties into payloads and splices
// them into rich text.
package compose

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"nametag/common"
	"nametag/inherit"
	"nametag/payload"
	"nametag/tags"
)

// Source supplies icon and text of a tag. What is visible depends on where
// the tag is shown, so there is a source per surface.
type Source interface {
	Icon(t *tags.Tag) (payload.IconID, bool)
	Text(t *tags.Tag) (string, bool)
}

type surfaceSource struct {
	iconVisible func(*tags.Tag) *inherit.Inheritable[bool]
	textVisible func(*tags.Tag) *inherit.Inheritable[bool]
}

func (s *surfaceSource) Icon(t *tags.Tag) (payload.IconID, bool) {
	if visible, ok := s.iconVisible(t).Effective(); !ok || !visible {
		return payload.IconNone, false
	}
	return t.Icon.Effective()
}

func (s *surfaceSource) Text(t *tags.Tag) (string, bool) {
	if visible, ok := s.textVisible(t).Effective(); !ok || !visible {
		return "", false
	}
	return t.Text.Effective()
}

var (
	// ChatSource shows icon and text according to chat visibility flags.
	ChatSource Source = &surfaceSource{
		iconVisible: func(t *tags.Tag) *inherit.Inheritable[bool] { return &t.IsIconVisibleInChat },
		textVisible: func(t *tags.Tag) *inherit.Inheritable[bool] { return &t.IsTextVisibleInChat },
	}
	// NameplateSource shows icon and text according to nameplate
	// visibility flags.
	NameplateSource Source = &surfaceSource{
		iconVisible: func(t *tags.Tag) *inherit.Inheritable[bool] { return &t.IsIconVisibleInNameplates },
		textVisible: func(t *tags.Tag) *inherit.Inheritable[bool] { return &t.IsTextVisibleInNameplates },
	}
)

// SourceFor returns source for the surface.
func SourceFor(s common.Surface) Source {
	if s == common.SurfaceNameplates {
		return NameplateSource
	}
	return ChatSource
}

// Notifier tells when configuration has been saved. Returned function
// cancels subscription.
type Notifier interface {
	OnSaved(fn func()) (unsubscribe func())
}

// Builder makes payloads for tags and keeps them until configuration is
// saved. Returned slices are shared and must not be modified.
type Builder struct {
	src Source
	log *zap.Logger

	mu    sync.Mutex
	cache map[*tags.Tag][]payload.Payload

	unsubscribe func()
}

// NewBuilder creates builder subscribed to saved notifications (if any).
// Close must be called to drop the subscription.
func NewBuilder(src Source, saved Notifier, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Builder{
		src:   src,
		log:   log,
		cache: make(map[*tags.Tag][]payload.Payload),
	}
	if saved != nil {
		b.unsubscribe = saved.OnSaved(b.Invalidate)
	}
	return b
}

// Close unsubscribes builder from saved notifications.
func (b *Builder) Close() {
	b.mu.Lock()
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Invalidate drops every cached payload.
func (b *Builder) Invalidate() {
	b.mu.Lock()
	n := len(b.cache)
	clear(b.cache)
	b.mu.Unlock()

	b.log.Debug("Payload cache invalidated", zap.Int("entries", n))
}

// Payloads returns payloads for the tag, building them if necessary.
func (b *Builder) Payloads(t *tags.Tag) []payload.Payload {
	if t == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if ps, ok := b.cache[t]; ok {
		return ps
	}
	ps := Build(b.src, t)
	b.cache[t] = ps
	b.log.Debug("Payloads built", zap.Stringer("tag", t), zap.Int("count", len(ps)))
	return ps
}

// Build makes payloads for the tag: icon (if any) followed by text wrapped
// into italic, glow and color toggles. Toggles are closed in reverse order.
func Build(src Source, t *tags.Tag) []payload.Payload {
	var res []payload.Payload

	if icon, ok := src.Icon(t); ok && icon != payload.IconNone {
		res = append(res, payload.NewIcon(icon))
	}

	text, ok := src.Text(t)
	if !ok || strings.TrimSpace(text) == "" {
		return res
	}

	italic, _ := t.IsTextItalic.Effective()
	glow, hasGlow := t.TextGlowColor.Effective()
	color, hasColor := t.TextColor.Effective()

	if italic {
		res = append(res, payload.ItalicOn())
	}
	if hasGlow {
		res = append(res, payload.GlowOn(glow))
	}
	if hasColor {
		res = append(res, payload.ColorOn(color))
	}
	res = append(res, payload.NewText(text))
	if hasColor {
		res = append(res, payload.ColorOff())
	}
	if hasGlow {
		res = append(res, payload.GlowOff())
	}
	if italic {
		res = append(res, payload.ItalicOff())
	}
	return res
}
