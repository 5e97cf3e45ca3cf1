package tags

import (
	"fmt"

	"github.com/gosimple/slug"

	"nametag/common"
	"nametag/inherit"
	"nametag/payload"
)

// Names of built-in tags.
const (
	NameAll       = "All"
	NameAllRoles  = "All Roles"
	NameAllCustom = "Custom Tags"
)

// Keys of built-in tags.
var (
	KeyAll       = slug.Make(NameAll)
	KeyAllRoles  = slug.Make(NameAllRoles)
	KeyAllCustom = slug.Make(NameAllCustom)
)

type role struct {
	name  string
	text  string
	color payload.ColorID
}

// UI color rows are from the game's UIColor sheet.
var builtinRoles = []role{
	{name: "Tank", text: "Tank", color: 546},
	{name: "Healer", text: "Healer", color: 43},
	{name: "DPS", text: "DPS", color: 508},
	{name: "Crafter", text: "Crafter", color: 3},
	{name: "Gatherer", text: "Gatherer", color: 6},
}

// NewTree builds tree with the built-in tags:
//
//	All
//	  All Roles
//	    Tank, Healer, DPS, Crafter, Gatherer
//	  Custom Tags
//
// Built-in tags are never removed. Custom tags live under "Custom Tags".
func NewTree() *Tree {
	tr := NewEmpty()

	all := New(KeyAll, NameAll)
	all.IsIconVisibleInChat.Set(inherit.BehaviorEnabled, true)
	all.IsIconVisibleInNameplates.Set(inherit.BehaviorEnabled, true)
	all.IsTextVisibleInChat.Set(inherit.BehaviorEnabled, true)
	all.IsTextVisibleInNameplates.Set(inherit.BehaviorEnabled, true)
	all.TagPositionInChat.Set(inherit.BehaviorEnabled, common.TagPositionBefore)
	all.TagPositionInNameplates.Set(inherit.BehaviorEnabled, common.TagPositionReplace)
	all.TagTargetInNameplates.Set(inherit.BehaviorEnabled, common.NameplateElementTitle)
	tr.all = mustAdd(tr, Handle{}, all)

	roles := New(KeyAllRoles, NameAllRoles)
	tr.allRoles = mustAdd(tr, tr.all, roles)
	for _, r := range builtinRoles {
		t := New(slug.Make(r.name), r.name)
		t.Text.Set(inherit.BehaviorEnabled, r.text)
		t.TextColor.Set(inherit.BehaviorEnabled, r.color)
		mustAdd(tr, tr.allRoles, t)
	}

	custom := New(KeyAllCustom, NameAllCustom)
	custom.TagPositionInNameplates.Set(inherit.BehaviorEnabled, common.TagPositionAfter)
	custom.TagTargetInNameplates.Set(inherit.BehaviorEnabled, common.NameplateElementName)
	tr.allCustom = mustAdd(tr, tr.all, custom)
	return tr
}

func mustAdd(tr *Tree, parent Handle, t *Tag) Handle {
	h, err := tr.Add(parent, t)
	if err != nil {
		// this should never happen
		panic(fmt.Sprintf("unable to add built-in tag: %v", err))
	}
	return h
}

// Root returns "All" tag, nil for trees not made by NewTree.
func (tr *Tree) Root() *Tag {
	return tr.Get(tr.all)
}

// RolesRoot returns "All Roles" tag.
func (tr *Tree) RolesRoot() *Tag {
	return tr.Get(tr.allRoles)
}

// CustomRoot returns "Custom Tags" tag.
func (tr *Tree) CustomRoot() *Tag {
	return tr.Get(tr.allCustom)
}

// Roles returns built-in role tags.
func (tr *Tree) Roles() []*Tag {
	if r := tr.RolesRoot(); r != nil {
		return r.Children()
	}
	return nil
}
