// Package tags keeps the tree of tags. Every tag owns a fixed set of
// inheritable properties whose parents are the same properties of the parent
// tag, so a property left on "inherit" takes its value from the closest
// ancestor which overrides it.
package tags

import (
	"fmt"

	"nametag/common"
	"nametag/inherit"
	"nametag/payload"
)

// Tag is a node of the tag tree.
type Tag struct {
	// Key is stable identifier: slug of the name for built-in tags, UUID for
	// custom ones.
	Key  string
	Name string

	Icon                      inherit.Inheritable[payload.IconID]
	IsIconVisibleInChat       inherit.Inheritable[bool]
	IsIconVisibleInNameplates inherit.Inheritable[bool]
	Text                      inherit.Inheritable[string]
	TextColor                 inherit.Inheritable[payload.ColorID]
	TextGlowColor             inherit.Inheritable[payload.ColorID]
	IsTextItalic              inherit.Inheritable[bool]
	IsTextVisibleInChat       inherit.Inheritable[bool]
	IsTextVisibleInNameplates inherit.Inheritable[bool]
	TagPositionInChat         inherit.Inheritable[common.TagPosition]
	TagPositionInNameplates   inherit.Inheritable[common.TagPosition]
	TagTargetInNameplates     inherit.Inheritable[common.NameplateElement]
	GameObjectNamesToApplyTo  inherit.Inheritable[string]

	tree     *Tree
	handle   Handle
	parent   Handle
	children []Handle
}

// New creates detached tag.
func New(key, name string) *Tag {
	t := &Tag{Key: key, Name: name}
	link(t, func(t *Tag) *inherit.Inheritable[payload.IconID] { return &t.Icon })
	link(t, func(t *Tag) *inherit.Inheritable[bool] { return &t.IsIconVisibleInChat })
	link(t, func(t *Tag) *inherit.Inheritable[bool] { return &t.IsIconVisibleInNameplates })
	link(t, func(t *Tag) *inherit.Inheritable[string] { return &t.Text })
	link(t, func(t *Tag) *inherit.Inheritable[payload.ColorID] { return &t.TextColor })
	link(t, func(t *Tag) *inherit.Inheritable[payload.ColorID] { return &t.TextGlowColor })
	link(t, func(t *Tag) *inherit.Inheritable[bool] { return &t.IsTextItalic })
	link(t, func(t *Tag) *inherit.Inheritable[bool] { return &t.IsTextVisibleInChat })
	link(t, func(t *Tag) *inherit.Inheritable[bool] { return &t.IsTextVisibleInNameplates })
	link(t, func(t *Tag) *inherit.Inheritable[common.TagPosition] { return &t.TagPositionInChat })
	link(t, func(t *Tag) *inherit.Inheritable[common.TagPosition] { return &t.TagPositionInNameplates })
	link(t, func(t *Tag) *inherit.Inheritable[common.NameplateElement] { return &t.TagTargetInNameplates })
	link(t, func(t *Tag) *inherit.Inheritable[string] { return &t.GameObjectNamesToApplyTo })
	return t
}

// link makes property of t inherit from the same property of whatever tag
// is t's parent at the moment of resolution.
func link[T comparable](t *Tag, field func(*Tag) *inherit.Inheritable[T]) {
	field(t).SetParent(func() *inherit.Inheritable[T] {
		if p := t.Parent(); p != nil {
			return field(p)
		}
		return nil
	})
}

// Handle returns handle of the tag in its tree, zero handle when tag is
// detached.
func (t *Tag) Handle() Handle {
	return t.handle
}

// Parent returns parent tag. Nil is returned for roots, detached tags and
// tags whose parent has been removed from the tree.
func (t *Tag) Parent() *Tag {
	if t.tree == nil || t.parent.IsZero() {
		return nil
	}
	return t.tree.Get(t.parent)
}

// Children returns live children in order.
func (t *Tag) Children() []*Tag {
	if t.tree == nil {
		return nil
	}
	res := make([]*Tag, 0, len(t.children))
	for _, h := range t.children {
		if c := t.tree.Get(h); c != nil {
			res = append(res, c)
		}
	}
	return res
}

// Property returns property by its identifier.
func (t *Tag) Property(id PropertyID) (inherit.Property, error) {
	switch id {
	case PropertyIDIcon:
		return &t.Icon, nil
	case PropertyIDIsIconVisibleInChat:
		return &t.IsIconVisibleInChat, nil
	case PropertyIDIsIconVisibleInNameplates:
		return &t.IsIconVisibleInNameplates, nil
	case PropertyIDText:
		return &t.Text, nil
	case PropertyIDTextColor:
		return &t.TextColor, nil
	case PropertyIDTextGlowColor:
		return &t.TextGlowColor, nil
	case PropertyIDIsTextItalic:
		return &t.IsTextItalic, nil
	case PropertyIDIsTextVisibleInChat:
		return &t.IsTextVisibleInChat, nil
	case PropertyIDIsTextVisibleInNameplates:
		return &t.IsTextVisibleInNameplates, nil
	case PropertyIDTagPositionInChat:
		return &t.TagPositionInChat, nil
	case PropertyIDTagPositionInNameplates:
		return &t.TagPositionInNameplates, nil
	case PropertyIDTagTargetInNameplates:
		return &t.TagTargetInNameplates, nil
	case PropertyIDGameObjectNamesToApplyTo:
		return &t.GameObjectNamesToApplyTo, nil
	}
	return nil, fmt.Errorf("tag %q: %w", t.Key, ErrUnknownProperty)
}

// Properties returns all properties in declaration order.
func (t *Tag) Properties() []Entry {
	return t.filter(func(inherit.Property) bool { return true })
}

// Overrides returns properties which are set locally.
func (t *Tag) Overrides() []Entry {
	return t.filter(func(p inherit.Property) bool { return p.Behavior() != inherit.BehaviorInherit })
}

// Inherited returns properties which could be overridden.
func (t *Tag) Inherited() []Entry {
	return t.filter(func(p inherit.Property) bool { return p.Behavior() == inherit.BehaviorInherit })
}

func (t *Tag) filter(keep func(inherit.Property) bool) []Entry {
	var res []Entry
	for _, id := range AllProperties() {
		p, err := t.Property(id)
		if err != nil {
			continue
		}
		if keep(p) {
			res = append(res, Entry{ID: id, Property: p})
		}
	}
	return res
}

func (t *Tag) String() string {
	return fmt.Sprintf("%s [%s]", t.Name, t.Key)
}
