package tags

import (
	"nametag/inherit"
	"nametag/utils/debug"
)

// Dump renders tree with local overrides of every tag. When resolved is set
// all properties are listed with the values they resolve to.
func (tr *Tree) Dump(resolved bool) string {
	tw := debug.NewTreeWriter()
	tr.Walk(func(t *Tag, depth int) bool {
		tw.Line(depth, "%s", t)
		entries := t.Overrides()
		if resolved {
			entries = t.Properties()
		}
		for _, e := range entries {
			dumpEntry(tw, depth+1, e, resolved)
		}
		return true
	})
	return tw.String()
}

func dumpEntry(tw *debug.TreeWriter, depth int, e Entry, resolved bool) {
	b, v, origin := e.Property.Behavior(), e.Property.String(), "local"
	if resolved {
		if b == inherit.BehaviorInherit {
			origin = "inherited"
		}
		var ok bool
		if b, v, ok = e.Property.ResolvedText(); !ok {
			tw.Line(depth, "%s: absent", e.ID)
			return
		}
	}
	label := e.ID.String() + " (" + b.String() + ", " + origin + ")"
	if d, _ := Describe(e.ID); d.Shared {
		tw.TextBlock(depth, label, v)
		return
	}
	tw.Line(depth, "%s: %s", label, v)
}
