package tags

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrAttached        = errors.New("tag already belongs to a tree")
	ErrStaleHandle     = errors.New("stale tag handle")
	ErrDuplicateKey    = errors.New("duplicate tag key")
	ErrCycle           = errors.New("tag cannot become its own descendant")
)

// Handle identifies a tag in a tree. Handles of removed tags become stale and
// never resolve again, even if the slot is reused. Zero handle is never
// valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether handle is unset.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	gen uint32
	tag *Tag
}

// Tree is an arena of tags. Relations between tags are kept as handles, so
// removing a tag simply invalidates its handle and whoever still refers to it
// sees nothing.
// NOTE: presently not to be used concurrently!
type Tree struct {
	slots []slot
	free  []uint32
	roots []Handle
	keys  map[string]Handle

	// built-in layout, see NewTree
	all, allRoles, allCustom Handle
	custom                   []Handle
}

// NewEmpty returns tree without any tags.
func NewEmpty() *Tree {
	return &Tree{keys: make(map[string]Handle)}
}

// Get resolves handle, returning nil for zero and stale handles.
func (tr *Tree) Get(h Handle) *Tag {
	if tr == nil || h.IsZero() || int(h.index) >= len(tr.slots) {
		return nil
	}
	s := tr.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.tag
}

// Find returns tag by its key.
func (tr *Tree) Find(key string) *Tag {
	return tr.Get(tr.keys[key])
}

// Add attaches detached tag under parent. Zero parent makes the tag a root.
func (tr *Tree) Add(parent Handle, t *Tag) (Handle, error) {
	if t.tree != nil && !t.handle.IsZero() && t.tree.Get(t.handle) == t {
		return Handle{}, fmt.Errorf("tag %q: %w", t.Key, ErrAttached)
	}
	var p *Tag
	if !parent.IsZero() {
		if p = tr.Get(parent); p == nil {
			return Handle{}, fmt.Errorf("parent of tag %q: %w", t.Key, ErrStaleHandle)
		}
	}
	if _, exists := tr.keys[t.Key]; exists && tr.Find(t.Key) != nil {
		return Handle{}, fmt.Errorf("tag %q: %w", t.Key, ErrDuplicateKey)
	}

	h := tr.alloc(t)
	t.tree, t.handle, t.parent, t.children = tr, h, parent, nil
	tr.keys[t.Key] = h
	if p != nil {
		p.children = append(p.children, h)
	} else {
		tr.roots = append(tr.roots, h)
	}
	return h, nil
}

func (tr *Tree) alloc(t *Tag) Handle {
	if n := len(tr.free); n > 0 {
		idx := tr.free[n-1]
		tr.free = tr.free[:n-1]
		s := &tr.slots[idx]
		s.tag = t
		return Handle{index: idx, gen: s.gen}
	}
	tr.slots = append(tr.slots, slot{gen: 1, tag: t})
	return Handle{index: uint32(len(tr.slots) - 1), gen: 1}
}

// Remove detaches tag and all its descendants. Handles of removed tags become
// stale. Removed tags keep their (now dangling) parent handle, so their
// inherited properties resolve as if there were no parent.
func (tr *Tree) Remove(h Handle) bool {
	t := tr.Get(h)
	if t == nil {
		return false
	}
	if p := tr.Get(t.parent); p != nil {
		p.children = slices.DeleteFunc(p.children, func(c Handle) bool { return c == h })
	} else {
		tr.roots = slices.DeleteFunc(tr.roots, func(c Handle) bool { return c == h })
	}
	tr.release(h)
	tr.custom = slices.DeleteFunc(tr.custom, func(c Handle) bool { return tr.Get(c) == nil })
	return true
}

func (tr *Tree) release(h Handle) {
	t := tr.Get(h)
	if t == nil {
		return
	}
	for _, c := range t.children {
		tr.release(c)
	}
	if tr.keys[t.Key] == h {
		delete(tr.keys, t.Key)
	}
	s := &tr.slots[h.index]
	s.tag = nil
	s.gen++
	tr.free = append(tr.free, h.index)
}

// Move re-parents tag. Zero parent makes it a root.
func (tr *Tree) Move(h, parent Handle) error {
	t := tr.Get(h)
	if t == nil {
		return ErrStaleHandle
	}
	if !parent.IsZero() {
		if tr.Get(parent) == nil {
			return ErrStaleHandle
		}
		for cur := tr.Get(parent); cur != nil; cur = cur.Parent() {
			if cur == t {
				return fmt.Errorf("tag %q: %w", t.Key, ErrCycle)
			}
		}
	}
	if p := tr.Get(t.parent); p != nil {
		p.children = slices.DeleteFunc(p.children, func(c Handle) bool { return c == h })
	} else {
		tr.roots = slices.DeleteFunc(tr.roots, func(c Handle) bool { return c == h })
	}
	t.parent = parent
	if p := tr.Get(parent); p != nil {
		p.children = append(p.children, h)
	} else {
		tr.roots = append(tr.roots, h)
	}
	return nil
}

// Roots returns root tags in order.
func (tr *Tree) Roots() []*Tag {
	res := make([]*Tag, 0, len(tr.roots))
	for _, h := range tr.roots {
		if t := tr.Get(h); t != nil {
			res = append(res, t)
		}
	}
	return res
}

// Walk visits tags depth first in order. Returning false from fn skips
// descendants of the visited tag.
func (tr *Tree) Walk(fn func(t *Tag, depth int) bool) {
	var walk func(t *Tag, depth int)
	walk = func(t *Tag, depth int) {
		if !fn(t, depth) {
			return
		}
		for _, c := range t.Children() {
			walk(c, depth+1)
		}
	}
	for _, r := range tr.Roots() {
		walk(r, 0)
	}
}

// Len returns number of live tags.
func (tr *Tree) Len() int {
	n := 0
	for _, s := range tr.slots {
		if s.tag != nil {
			n++
		}
	}
	return n
}
