package tags

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
)

// Entity is whatever carries a name which may be decorated.
type Entity struct {
	Name string
	// Role is optional name of built-in role tag (case insensitive).
	Role string
}

// Applicable returns tags to be applied to the entity: role tag first (if
// any), then matching custom tags in the order they were added.
func (tr *Tree) Applicable(e Entity) []*Tag {
	var res []*Tag
	if e.Role != "" {
		fold := cases.Fold()
		role := fold.String(e.Role)
		for _, t := range tr.Roles() {
			if fold.String(t.Name) == role || t.Key == role {
				res = append(res, t)
				break
			}
		}
	}
	if e.Name == "" {
		return res
	}
	for _, t := range tr.Custom() {
		if t.AppliesTo(e.Name) {
			res = append(res, t)
		}
	}
	return res
}

// AppliesTo reports whether name passes tag's name filter. Filter is a list
// of names or shell patterns separated by commas or semicolons; comparison
// ignores case.
func (t *Tag) AppliesTo(name string) bool {
	list, ok := t.GameObjectNamesToApplyTo.Effective()
	if !ok {
		return false
	}
	fold := cases.Fold()
	name = fold.String(strings.TrimSpace(name))
	for _, candidate := range SplitNames(list) {
		candidate = fold.String(candidate)
		if candidate == name {
			return true
		}
		if matched, err := path.Match(candidate, name); err == nil && matched {
			return true
		}
	}
	return false
}

// SplitNames splits name filter into trimmed non-empty names.
func SplitNames(list string) []string {
	var res []string
	for _, n := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ';' }) {
		if n = strings.TrimSpace(n); n != "" {
			res = append(res, n)
		}
	}
	return res
}
