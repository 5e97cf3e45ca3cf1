package compose

import (
	"errors"
	"reflect"
	"slices"

	"nametag/common"
	"nametag/payload"
)

var (
	// ErrNoTarget is returned when there is nothing to apply changes to.
	ErrNoTarget = errors.New("no target to apply changes to")
	// ErrAnchorNotFound is returned when anchor is not part of the target.
	ErrAnchorNotFound = errors.New("anchor payload is not part of the target")
)

// Sequence is mutable rich text changes are applied to.
type Sequence interface {
	IndexOf(p payload.Payload) int
	Insert(i int, ps ...payload.Payload)
	Append(ps ...payload.Payload)
	Remove(p payload.Payload) bool
	Reset(ps ...payload.Payload)
}

var _ Sequence = (*payload.String)(nil)

// isNil catches typed nils, such as nil *payload.String, as well.
func isNil(s Sequence) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Changes are payloads accumulated per position, possibly from several tags.
type Changes map[common.TagPosition][]payload.Payload

// Add appends payloads to the list of the position. Empty payloads are
// ignored.
func (c Changes) Add(pos common.TagPosition, ps []payload.Payload) {
	if c == nil || len(ps) == 0 {
		return
	}
	c[pos] = append(c[pos], ps...)
}

// Empty reports whether there is anything to apply.
func (c Changes) Empty() bool {
	for _, ps := range c {
		if len(ps) > 0 {
			return false
		}
	}
	return true
}

// Apply splices changes into target. With an anchor "before" and "after"
// payloads surround the anchor and "replace" payloads take its place.
// Without anchor changes apply to the whole target: "replace" substitutes
// everything, "before" and "after" go to the edges.
//
// Replacement goes last when there is an anchor (so it can still be found)
// and first when there is none (so the edges are those of the replaced
// content). Each list is normalized before it is spliced, lists in changes
// are not modified.
//
// Target is either changed completely or not at all.
func Apply(target Sequence, changes Changes, anchor payload.Payload) error {
	if isNil(target) {
		return ErrNoTarget
	}
	if changes.Empty() {
		return nil
	}
	if anchor != nil && target.IndexOf(anchor) < 0 {
		return ErrAnchorNotFound
	}

	order := []common.TagPosition{common.TagPositionReplace, common.TagPositionBefore, common.TagPositionAfter}
	if anchor != nil {
		order = []common.TagPosition{common.TagPositionBefore, common.TagPositionAfter, common.TagPositionReplace}
	}

	for _, pos := range order {
		if len(changes[pos]) == 0 {
			continue
		}
		ps := Normalize(slices.Clone(changes[pos]), pos)
		switch pos {
		case common.TagPositionBefore:
			if anchor != nil {
				target.Insert(target.IndexOf(anchor), ps...)
			} else {
				target.Insert(0, ps...)
			}
		case common.TagPositionAfter:
			if anchor != nil {
				target.Insert(target.IndexOf(anchor)+1, ps...)
			} else {
				target.Append(ps...)
			}
		case common.TagPositionReplace:
			if anchor != nil {
				target.Insert(target.IndexOf(anchor), ps...)
				target.Remove(anchor)
			} else {
				target.Reset(ps...)
			}
		}
	}
	return nil
}
