package tags

import (
	"errors"
	"strings"
	"testing"

	"nametag/inherit"
)

func TestNewTree_Layout(t *testing.T) {
	tr := NewTree()

	var got []string
	tr.Walk(func(tag *Tag, depth int) bool {
		got = append(got, strings.Repeat(".", depth)+tag.Name)
		return true
	})
	want := []string{"All", ".All Roles", "..Tank", "..Healer", "..DPS", "..Crafter", "..Gatherer", ".Custom Tags"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
	if tr.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", tr.Len(), len(want))
	}
	if tr.Root().Key != "all" || tr.RolesRoot().Key != "all-roles" || tr.CustomRoot().Key != "custom-tags" {
		t.Errorf("unexpected built-in keys %q %q %q", tr.Root().Key, tr.RolesRoot().Key, tr.CustomRoot().Key)
	}
	if len(tr.Roles()) != 5 {
		t.Errorf("Roles() = %d tags, want 5", len(tr.Roles()))
	}
}

func TestWalk_Skip(t *testing.T) {
	tr := NewTree()
	n := 0
	tr.Walk(func(tag *Tag, depth int) bool {
		n++
		return tag != tr.RolesRoot()
	})
	if n != 3 {
		t.Errorf("Walk() visited %d tags, want 3", n)
	}
}

func TestResolve_ThroughTree(t *testing.T) {
	tr := NewEmpty()
	root, mid, leaf := New("root", "Root"), New("mid", "Mid"), New("leaf", "Leaf")
	root.IsTextItalic.Set(inherit.BehaviorEnabled, true)

	rh, err := tr.Add(Handle{}, root)
	if err != nil {
		t.Fatal(err)
	}
	mh, err := tr.Add(rh, mid)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Add(mh, leaf); err != nil {
		t.Fatal(err)
	}

	r, ok := leaf.IsTextItalic.Resolve()
	if !ok || r.Behavior != inherit.BehaviorEnabled || !r.Value {
		t.Fatalf("Resolve() = %+v, %v, want enabled true", r, ok)
	}

	leaf.IsTextItalic.Set(inherit.BehaviorDisabled, false)
	r, ok = leaf.IsTextItalic.Resolve()
	if !ok || r.Behavior != inherit.BehaviorDisabled || r.Value {
		t.Fatalf("Resolve() = %+v, %v, want disabled false", r, ok)
	}
}

func TestRemove_DanglingParent(t *testing.T) {
	tr := NewEmpty()
	root, mid, leaf := New("root", "Root"), New("mid", "Mid"), New("leaf", "Leaf")
	root.Text.Set(inherit.BehaviorEnabled, "inherited")

	rh, _ := tr.Add(Handle{}, root)
	mh, _ := tr.Add(rh, mid)
	lh, _ := tr.Add(mh, leaf)

	if v, ok := leaf.Text.Effective(); !ok || v != "inherited" {
		t.Fatalf("Effective() = %q, %v before removal", v, ok)
	}

	if !tr.Remove(mh) {
		t.Fatal("Remove() = false")
	}
	if tr.Remove(mh) {
		t.Error("second Remove() = true")
	}
	if tr.Get(mh) != nil || tr.Get(lh) != nil {
		t.Error("removed tags still resolve")
	}
	if tr.Find("leaf") != nil {
		t.Error("removed descendant still found by key")
	}
	if len(root.Children()) != 0 {
		t.Errorf("root still has %d children", len(root.Children()))
	}

	if _, ok := leaf.Text.Resolve(); ok {
		t.Error("Resolve() through removed parent reported a value")
	}
	if leaf.Parent() != nil || mid.Parent() != nil {
		t.Error("removed tags still see their parents")
	}

	// slot reuse must not revive the old parent
	other := New("other", "Other")
	other.Text.Set(inherit.BehaviorEnabled, "other")
	if _, err := tr.Add(Handle{}, other); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Add(Handle{}, New("another", "Another")); err != nil {
		t.Fatal(err)
	}
	if _, ok := leaf.Text.Resolve(); ok {
		t.Error("Resolve() reached tag occupying reused slot")
	}
}

func TestAdd_Errors(t *testing.T) {
	tr := NewEmpty()
	a := New("a", "A")
	ah, err := tr.Add(Handle{}, a)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tr.Add(Handle{}, a); !errors.Is(err, ErrAttached) {
		t.Errorf("Add() of attached tag error = %v", err)
	}
	if _, err := tr.Add(ah, New("a", "Another A")); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Add() with duplicate key error = %v", err)
	}

	b := New("b", "B")
	bh, _ := tr.Add(ah, b)
	tr.Remove(bh)
	if _, err := tr.Add(bh, New("c", "C")); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Add() under stale parent error = %v", err)
	}

	// removed tag may be attached again
	if _, err := tr.Add(ah, b); err != nil {
		t.Errorf("Add() of removed tag error = %v", err)
	}
}

func TestMove(t *testing.T) {
	tr := NewEmpty()
	a, b, c := New("a", "A"), New("b", "B"), New("c", "C")
	a.TextColor.Set(inherit.BehaviorEnabled, 1)
	b.TextColor.Set(inherit.BehaviorEnabled, 2)
	ah, _ := tr.Add(Handle{}, a)
	bh, _ := tr.Add(Handle{}, b)
	ch, _ := tr.Add(ah, c)

	if v, _ := c.TextColor.Effective(); v != 1 {
		t.Fatalf("Effective() = %d, want 1", v)
	}
	if err := tr.Move(ch, bh); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.TextColor.Effective(); v != 2 {
		t.Errorf("Effective() after move = %d, want 2", v)
	}
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Error("children not updated by Move()")
	}

	if err := tr.Move(bh, ch); !errors.Is(err, ErrCycle) {
		t.Errorf("Move() under own descendant error = %v", err)
	}
	if err := tr.Move(ch, Handle{}); err != nil || len(tr.Roots()) != 3 {
		t.Errorf("Move() to root = %v, roots %d", err, len(tr.Roots()))
	}
}

func TestProperties(t *testing.T) {
	tag := New("k", "K")
	for _, id := range AllProperties() {
		p, err := tag.Property(id)
		if err != nil || p == nil {
			t.Errorf("Property(%s) = %v, %v", id, p, err)
		}
		if _, ok := Describe(id); !ok {
			t.Errorf("Describe(%s) missing", id)
		}
	}
	if len(AllProperties()) != 13 {
		t.Errorf("AllProperties() = %d, want 13", len(AllProperties()))
	}
	if AllProperties()[0] != PropertyIDIcon {
		t.Errorf("AllProperties()[0] = %s, want icon", AllProperties()[0])
	}
	if _, err := tag.Property(PropertyID(100)); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Property(100) error = %v", err)
	}

	if d, _ := Describe(PropertyIDText); !d.Shared || d.Hint != HintText {
		t.Errorf("Describe(text) = %+v", d)
	}
	if d, _ := Describe(PropertyIDTagPositionInChat); d.Hint != HintChoice || len(d.Choices) != 3 {
		t.Errorf("Describe(tag_position_in_chat) = %+v", d)
	}

	p, _ := tag.Property(PropertyIDTextColor)
	if err := p.SetText("17"); err != nil {
		t.Fatal(err)
	}
	p.SetBehavior(inherit.BehaviorEnabled)
	if v, ok := tag.TextColor.Effective(); !ok || v != 17 {
		t.Errorf("TextColor = %d, %v after editing through Property", v, ok)
	}
	if len(tag.Overrides()) != 1 || len(tag.Inherited()) != 12 {
		t.Errorf("Overrides() = %d, Inherited() = %d", len(tag.Overrides()), len(tag.Inherited()))
	}
}

func TestDump(t *testing.T) {
	tr := NewTree()
	out := tr.Dump(false)
	for _, want := range []string{
		"All [all]\n",
		"  is_icon_visible_in_chat (enabled, local): true\n",
		"    Tank [tank]\n",
		`      text (enabled, local): "Tank"` + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump(false) does not contain %q:\n%s", want, out)
		}
	}

	out = tr.Dump(true)
	for _, want := range []string{
		"      tag_position_in_chat (enabled, inherited): before\n",
		"      icon: absent\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump(true) does not contain %q:\n%s", want, out)
		}
	}
}
