// Package feature decorates names shown on different surfaces with tags
// applicable to their owners.
package feature

import (
	"go.uber.org/zap"

	"nametag/compose"
	"nametag/config"
	"nametag/payload"
	"nametag/tags"
)

// Chat decorates names in chat messages.
type Chat struct {
	tree      *tags.Tree
	builder   *compose.Builder
	randomize bool
	log       *zap.Logger
}

// NewChat returns chat decorator. Builder is expected to use chat source.
func NewChat(tree *tags.Tree, builder *compose.Builder, cfg *config.Config, log *zap.Logger) *Chat {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chat{
		tree:      tree,
		builder:   builder,
		randomize: cfg != nil && cfg.Development.RandomizeNames,
		log:       log.Named("chat"),
	}
}

// Decorate splices tags applicable to the entity into message around anchor
// (payload with entity's name). Without anchor tags apply to the whole
// message. Message is left untouched when an error is returned.
func (c *Chat) Decorate(msg *payload.String, anchor payload.Payload, e tags.Entity) error {
	if msg == nil {
		return compose.ErrNoTarget
	}
	if anchor != nil && msg.IndexOf(anchor) < 0 {
		return compose.ErrAnchorNotFound
	}

	changes := compose.Changes{}
	for _, t := range c.tree.Applicable(e) {
		pos, ok := t.TagPositionInChat.Effective()
		if !ok {
			c.log.Debug("Tag has no chat position, skipping", zap.Stringer("tag", t))
			continue
		}
		ps := c.builder.Payloads(t)
		changes.Add(pos, ps)
		c.log.Debug("Tag applied", zap.Stringer("tag", t), zap.Stringer("position", pos), zap.Int("payloads", len(ps)))
	}

	if c.randomize {
		if text, ok := anchor.(*payload.Text); ok {
			random := payload.NewText(RandomName(text.Value))
			msg.Insert(msg.IndexOf(anchor), random)
			msg.Remove(anchor)
			anchor = random
		}
	}
	return compose.Apply(msg, changes, anchor)
}
