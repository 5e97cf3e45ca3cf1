// Package common keeps enums shared between tag configuration, payload
// composition and the host adapters, so none of them has to import the
// others just to name a position or a nameplate element.
package common

//go:generate go tool go-enum --marshal --names

// Where, relative to an anchor, tag payloads are placed.
// ENUM(before, after, replace)
type TagPosition int

// Part of a nameplate a tag modifies.
// ENUM(name, title, free-company)
type NameplateElement int

// Place where decorated names show up.
// ENUM(chat, nameplates)
type Surface int

// Positions returns all positions in declaration order.
func Positions() []TagPosition {
	return []TagPosition{TagPositionBefore, TagPositionAfter, TagPositionReplace}
}
