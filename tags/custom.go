package tags

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"nametag/inherit"
)

// ErrNoCustomRoot is returned when tree has no place for custom tags.
var ErrNoCustomRoot = errors.New("tree has no custom tags root")

// NewCustom returns detached custom tag with empty text and empty name
// filter, both enabled so they are ready to be edited.
func NewCustom(name string) *Tag {
	t := New(uuid.NewString(), name)
	t.Text.Set(inherit.BehaviorEnabled, "")
	t.GameObjectNamesToApplyTo.Set(inherit.BehaviorEnabled, "")
	return t
}

// AddCustom creates new custom tag.
func (tr *Tree) AddCustom(name string) (*Tag, error) {
	t := NewCustom(name)
	if err := tr.AdoptCustom(t); err != nil {
		return nil, err
	}
	return t, nil
}

// AdoptCustom puts tag under custom tags root. Detached tags without valid
// UUID key get a new one. Tag already living elsewhere in this tree is moved
// under the root, its key must be a UUID then since it cannot change.
func (tr *Tree) AdoptCustom(t *Tag) error {
	if tr.CustomRoot() == nil {
		return ErrNoCustomRoot
	}
	if tr.IsCustom(t) {
		return nil
	}
	if t.tree == tr && tr.Get(t.handle) == t {
		if _, err := uuid.Parse(t.Key); err != nil {
			return fmt.Errorf("tag %q: %w", t.Key, ErrAttached)
		}
		if err := tr.Move(t.handle, tr.allCustom); err != nil {
			return err
		}
		tr.custom = append(tr.custom, t.handle)
		return nil
	}
	if _, err := uuid.Parse(t.Key); err != nil {
		t.Key = uuid.NewString()
	}
	h, err := tr.Add(tr.allCustom, t)
	if err != nil {
		return err
	}
	tr.custom = append(tr.custom, h)
	return nil
}

// RemoveCustom removes custom tag with its descendants. Built-in tags
// cannot be removed this way.
func (tr *Tree) RemoveCustom(key string) bool {
	t := tr.Find(key)
	if t == nil || !tr.IsCustom(t) {
		return false
	}
	return tr.Remove(t.handle)
}

// IsCustom reports whether tag was added as a custom tag.
func (tr *Tree) IsCustom(t *Tag) bool {
	return t != nil && slices.Contains(tr.custom, t.handle) && tr.Get(t.handle) == t
}

// Custom returns custom tags in the order they were added.
func (tr *Tree) Custom() []*Tag {
	res := make([]*Tag, 0, len(tr.custom))
	for _, h := range tr.custom {
		if t := tr.Get(h); t != nil {
			res = append(res, t)
		}
	}
	return res
}

// SortedCustom returns custom tags in natural order of their names.
func (tr *Tree) SortedCustom() []*Tag {
	res := tr.Custom()
	slices.SortStableFunc(res, func(a, b *Tag) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}
		return 0
	})
	return res
}
