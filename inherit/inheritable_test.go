package inherit

import (
	"errors"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func chain[T comparable](values ...*Inheritable[T]) {
	for i := 1; i < len(values); i++ {
		parent := values[i-1]
		values[i].SetParent(func() *Inheritable[T] { return parent })
	}
}

func TestResolve_Chain(t *testing.T) {
	root := New(BehaviorEnabled, true)
	mid := New(BehaviorInherit, false)
	leaf := New(BehaviorInherit, false)
	chain(&root, &mid, &leaf)

	r, ok := leaf.Resolve()
	if !ok || r.Behavior != BehaviorEnabled || !r.Value {
		t.Fatalf("Resolve() = %+v, %v, want enabled true", r, ok)
	}

	leaf.Set(BehaviorDisabled, false)
	r, ok = leaf.Resolve()
	if !ok || r.Behavior != BehaviorDisabled || r.Value {
		t.Fatalf("Resolve() = %+v, %v, want disabled false", r, ok)
	}

	mid.Set(BehaviorDisabled, true)
	leaf.Reset()
	r, ok = leaf.Resolve()
	if !ok || r.Behavior != BehaviorDisabled || !r.Value {
		t.Fatalf("Resolve() = %+v, %v, want disabled true from mid", r, ok)
	}
}

func TestResolve_Absent(t *testing.T) {
	lonely := New(BehaviorInherit, 42)
	if _, ok := lonely.Resolve(); ok {
		t.Error("Resolve() without parent reported a value")
	}

	orphan := New(BehaviorInherit, 42)
	orphan.SetParent(func() *Inheritable[int] { return nil })
	if _, ok := orphan.Resolve(); ok {
		t.Error("Resolve() with vanished parent reported a value")
	}

	root := New(BehaviorInherit, 1)
	leaf := New(BehaviorInherit, 2)
	chain(&root, &leaf)
	if _, ok := leaf.Resolve(); ok {
		t.Error("Resolve() of chain without overrides reported a value")
	}
}

func TestResolve_Cycle(t *testing.T) {
	a := New(BehaviorInherit, "a")
	b := New(BehaviorInherit, "b")
	a.SetParent(func() *Inheritable[string] { return &b })
	b.SetParent(func() *Inheritable[string] { return &a })

	if _, ok := a.Resolve(); ok {
		t.Error("Resolve() of circular chain reported a value")
	}
}

func TestResolve_InvalidBehavior(t *testing.T) {
	root := New(BehaviorEnabled, 7)
	leaf := New(Behavior(99), 1)
	chain(&root, &leaf)

	r, ok := leaf.Resolve()
	if !ok || r.Value != 7 {
		t.Errorf("Resolve() = %+v, %v, want value of parent", r, ok)
	}
}

func TestEffective(t *testing.T) {
	root := New(BehaviorDisabled, "hidden")
	leaf := New(BehaviorInherit, "")
	chain(&root, &leaf)

	if v, ok := leaf.Effective(); ok {
		t.Errorf("Effective() = %q, want absent for disabled ancestor", v)
	}

	root.Enable()
	if v, ok := leaf.Effective(); !ok || v != "hidden" {
		t.Errorf("Effective() = %q, %v, want \"hidden\"", v, ok)
	}
}

func TestReset_KeepsDraft(t *testing.T) {
	v := New(BehaviorEnabled, 15)
	v.Reset()
	if v.Behavior() != BehaviorInherit {
		t.Errorf("Behavior() = %v, want inherit", v.Behavior())
	}
	if v.Value() != 15 {
		t.Errorf("Value() = %d, want draft 15", v.Value())
	}
	if v.IsDefault() {
		t.Error("IsDefault() = true for value with a draft")
	}

	v.SetBehavior(BehaviorEnabled)
	if got, _ := v.Effective(); got != 15 {
		t.Errorf("Effective() = %d after re-enabling, want 15", got)
	}
}

func TestEnable(t *testing.T) {
	flag := New(BehaviorInherit, false)
	flag.Enable()
	if flag.Behavior() != BehaviorEnabled || !flag.Value() {
		t.Errorf("Enable() on flag = %v %v, want enabled true", flag.Behavior(), flag.Value())
	}

	text := New(BehaviorDisabled, "keep")
	text.Enable()
	if text.Behavior() != BehaviorEnabled || text.Value() != "keep" {
		t.Errorf("Enable() on text = %v %q", text.Behavior(), text.Value())
	}

	text.Disable()
	if text.Behavior() != BehaviorDisabled {
		t.Errorf("Disable() = %v", text.Behavior())
	}
}

func TestSetText(t *testing.T) {
	var flag Inheritable[bool]
	if err := flag.SetText("true"); err != nil || !flag.Value() {
		t.Errorf("SetText(true) = %v, value %v", err, flag.Value())
	}
	if flag.Behavior() != BehaviorInherit {
		t.Error("SetText() changed behavior")
	}

	var num Inheritable[uint16]
	if err := num.SetText("546"); err != nil || num.Value() != 546 {
		t.Errorf("SetText(546) = %v, value %d", err, num.Value())
	}
	if err := num.SetText("red"); err == nil {
		t.Error("SetText(red) on number succeeded")
	}
	if num.Value() != 546 {
		t.Errorf("failed SetText() changed value to %d", num.Value())
	}

	var text Inheritable[string]
	if err := text.SetText(" a, b "); err != nil || text.Value() != " a, b " {
		t.Errorf("SetText() on text = %v, value %q", err, text.Value())
	}

	var enum Inheritable[Behavior]
	if err := enum.SetText("disabled"); err != nil || enum.Value() != BehaviorDisabled {
		t.Errorf("SetText(disabled) = %v, value %v", err, enum.Value())
	}
	if err := enum.SetText("sometimes"); !errors.Is(err, ErrInvalidBehavior) {
		t.Errorf("SetText(sometimes) error = %v, want %v", err, ErrInvalidBehavior)
	}
}

func TestResolvedText(t *testing.T) {
	root := New(BehaviorEnabled, uint32(12))
	leaf := New(BehaviorInherit, uint32(0))
	chain(&root, &leaf)

	b, v, ok := leaf.ResolvedText()
	if !ok || b != BehaviorEnabled || v != "12" {
		t.Errorf("ResolvedText() = %v %q %v", b, v, ok)
	}

	var lonely Inheritable[uint32]
	if _, _, ok := lonely.ResolvedText(); ok {
		t.Error("ResolvedText() reported value for absent property")
	}
}

func TestYAML(t *testing.T) {
	v := New(BehaviorEnabled, 5)
	data, err := yaml.Marshal(&v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), "behavior: enabled\nvalue: 5\n"; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}

	empty := New(BehaviorInherit, 0)
	data, err = yaml.Marshal(&empty)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), "behavior: inherit\n"; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}

	root := New(BehaviorEnabled, 1)
	loaded := New(BehaviorInherit, 0)
	chain(&root, &loaded)
	if err := yaml.Unmarshal([]byte("behavior: disabled\nvalue: 3\n"), &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if loaded.Behavior() != BehaviorDisabled || loaded.Value() != 3 {
		t.Errorf("Unmarshal() = %v %d", loaded.Behavior(), loaded.Value())
	}
	if loaded.Parent() != &root {
		t.Error("Unmarshal() lost parent link")
	}

	if err := yaml.Unmarshal([]byte("behavior: maybe\n"), &loaded); err == nil {
		t.Error("Unmarshal() accepted invalid behavior")
	}
}
