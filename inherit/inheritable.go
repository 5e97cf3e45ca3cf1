// Package inherit implements tri-state configuration values. A value is
// either set locally (enabled or disabled) or inherited from a parent value
// of the same kind, in which case it is resolved by walking the parent chain
// every time it is read.
package inherit

import (
	"encoding"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

//go:generate go tool go-enum --marshal --names

// How a value participates in resolution.
// ENUM(inherit, enabled, disabled)
type Behavior int

// ParentFunc looks up the value an Inheritable inherits from. It is called on
// every resolution so that parent links are never cached: returning nil means
// there is no parent (anymore).
type ParentFunc[T comparable] func() *Inheritable[T]

// Inheritable is a single configuration value which may be overridden locally
// or inherited from its parent.
//
// Local value is kept even when behavior is switched back to inherit, so it
// can serve as a draft when the value gets enabled again.
type Inheritable[T comparable] struct {
	behavior Behavior
	value    T
	parent   ParentFunc[T]
}

// Resolved is the outcome of walking the inheritance chain. Behavior is never
// BehaviorInherit.
type Resolved[T comparable] struct {
	Behavior Behavior
	Value    T
}

// New returns value with given local behavior.
func New[T comparable](behavior Behavior, value T) Inheritable[T] {
	return Inheritable[T]{behavior: behavior, value: value}
}

// Behavior returns local behavior.
func (i *Inheritable[T]) Behavior() Behavior {
	return i.behavior
}

// Value returns local value regardless of behavior.
func (i *Inheritable[T]) Value() T {
	return i.value
}

// SetBehavior changes local behavior, local value is preserved.
func (i *Inheritable[T]) SetBehavior(b Behavior) {
	i.behavior = b
}

// SetValue changes local value, behavior is not touched.
func (i *Inheritable[T]) SetValue(v T) {
	i.value = v
}

// Set overrides value locally.
func (i *Inheritable[T]) Set(b Behavior, v T) {
	i.behavior, i.value = b, v
}

// Enable switches value to enabled. Booleans are switched on as well since
// enabling a flag without turning it on is never what is wanted.
func (i *Inheritable[T]) Enable() {
	i.behavior = BehaviorEnabled
	if b, ok := any(&i.value).(*bool); ok {
		*b = true
	}
}

// Disable switches value to disabled.
func (i *Inheritable[T]) Disable() {
	i.behavior = BehaviorDisabled
}

// Reset makes value inherited again.
func (i *Inheritable[T]) Reset() {
	i.behavior = BehaviorInherit
}

// IsDefault reports whether value carries no local information at all.
func (i *Inheritable[T]) IsDefault() bool {
	var zero T
	return i.behavior == BehaviorInherit && i.value == zero
}

// SetParent links value to its parent.
func (i *Inheritable[T]) SetParent(fn ParentFunc[T]) {
	i.parent = fn
}

// Parent returns the value this one currently inherits from or nil.
func (i *Inheritable[T]) Parent() *Inheritable[T] {
	if i == nil || i.parent == nil {
		return nil
	}
	return i.parent()
}

// Resolve walks inheritance chain starting with this value and returns the
// first local override. When nothing in the chain is overridden (or the chain
// is broken by a stale parent) the result is absent.
func (i *Inheritable[T]) Resolve() (Resolved[T], bool) {
	var visited map[*Inheritable[T]]struct{}
	for cur := i; cur != nil; cur = cur.Parent() {
		switch cur.behavior {
		case BehaviorEnabled, BehaviorDisabled:
			return Resolved[T]{Behavior: cur.behavior, Value: cur.value}, true
		}
		if visited == nil {
			visited = make(map[*Inheritable[T]]struct{})
		}
		if _, seen := visited[cur]; seen {
			// circular chain, treat as absent
			break
		}
		visited[cur] = struct{}{}
	}
	return Resolved[T]{}, false
}

// Effective returns resolved value when it is enabled. Disabled values are
// reported absent, exactly as values which are not set anywhere in the chain.
func (i *Inheritable[T]) Effective() (T, bool) {
	if r, ok := i.Resolve(); ok && r.Behavior == BehaviorEnabled {
		return r.Value, true
	}
	var zero T
	return zero, false
}

// String returns local value as text.
func (i *Inheritable[T]) String() string {
	return fmt.Sprint(i.value)
}

// ResolvedText is Resolve with value rendered as text.
func (i *Inheritable[T]) ResolvedText() (Behavior, string, bool) {
	r, ok := i.Resolve()
	if !ok {
		return BehaviorInherit, "", false
	}
	return r.Behavior, fmt.Sprint(r.Value), true
}

// SetText parses text into local value. Behavior is not touched.
func (i *Inheritable[T]) SetText(text string) error {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = text
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(text)); err != nil {
			return err
		}
	default:
		n := yaml.Node{Kind: yaml.ScalarNode, Value: text}
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("unable to parse %q as %T: %w", text, v, err)
		}
	}
	i.value = v
	return nil
}

type document[T comparable] struct {
	Behavior Behavior `yaml:"behavior"`
	Value    T        `yaml:"value,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. Parent link is not persisted, it
// is a property of the tree.
func (i *Inheritable[T]) MarshalYAML() (any, error) {
	return document[T]{Behavior: i.behavior, Value: i.value}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Parent link is preserved.
func (i *Inheritable[T]) UnmarshalYAML(n *yaml.Node) error {
	var doc document[T]
	if err := n.Decode(&doc); err != nil {
		return err
	}
	i.behavior, i.value = doc.Behavior, doc.Value
	return nil
}

// Property is the type independent view of an Inheritable, used where values
// of different kinds are handled uniformly (listing, persistence, editing).
type Property interface {
	Behavior() Behavior
	SetBehavior(Behavior)
	Enable()
	Disable()
	Reset()
	IsDefault() bool
	String() string
	ResolvedText() (Behavior, string, bool)
	SetText(string) error
	yaml.Marshaler
	yaml.Unmarshaler
}

var (
	_ Property = (*Inheritable[bool])(nil)
	_ Property = (*Inheritable[string])(nil)
)
