// Package payload defines segments of rich text: icons, text and style
// toggles, and a mutable sequence of them.
package payload

import (
	"fmt"
	"strconv"
	"strings"
)

// IconID identifies an icon from the game font. Zero is "no icon".
type IconID uint32

// IconNone is the absence of an icon.
const IconNone IconID = 0

// ColorID identifies a UI color. Zero is the default color, which is how
// colors are switched off.
type ColorID uint16

// Payload is a single segment of rich text. Payloads are immutable and are
// compared by identity: two payloads with the same content are different
// segments.
type Payload interface {
	fmt.Stringer
	payload()
}

// Icon shows an icon.
type Icon struct {
	ID IconID
}

// Text is a run of plain text.
type Text struct {
	Value string
}

// StyleAttr is text attribute toggled by Style payload.
type StyleAttr int

const (
	AttrColor StyleAttr = iota
	AttrGlow
	AttrItalic
)

// Style switches text attribute on or off for the following text.
type Style struct {
	Attr  StyleAttr
	On    bool
	Color ColorID
}

func (*Icon) payload()  {}
func (*Text) payload()  {}
func (*Style) payload() {}

// NewIcon returns icon payload.
func NewIcon(id IconID) *Icon {
	return &Icon{ID: id}
}

// NewText returns text payload.
func NewText(value string) *Text {
	return &Text{Value: value}
}

// Space returns new single space text payload.
func Space() *Text {
	return &Text{Value: " "}
}

func ColorOn(c ColorID) *Style { return &Style{Attr: AttrColor, On: true, Color: c} }
func ColorOff() *Style         { return &Style{Attr: AttrColor} }
func GlowOn(c ColorID) *Style  { return &Style{Attr: AttrGlow, On: true, Color: c} }
func GlowOff() *Style          { return &Style{Attr: AttrGlow} }
func ItalicOn() *Style         { return &Style{Attr: AttrItalic, On: true} }
func ItalicOff() *Style        { return &Style{Attr: AttrItalic} }

func (p *Icon) String() string {
	return "<icon(" + strconv.FormatUint(uint64(p.ID), 10) + ")>"
}

// String escapes markup characters so that sequence markup stays
// unambiguous.
func (p *Text) String() string {
	return markupEscaper.Replace(p.Value)
}

func (p *Style) String() string {
	var name string
	switch p.Attr {
	case AttrColor:
		name = "color"
	case AttrGlow:
		name = "glow"
	case AttrItalic:
		name = "i"
	default:
		name = "style" + strconv.Itoa(int(p.Attr))
	}
	switch {
	case !p.On:
		return "</" + name + ">"
	case p.Attr == AttrItalic:
		return "<" + name + ">"
	default:
		return "<" + name + "(" + strconv.FormatUint(uint64(p.Color), 10) + ")>"
	}
}

var markupEscaper = strings.NewReplacer(`\`, `\\`, "<", `\<`, ">", `\>`)

// IsText reports whether payload is a text payload.
func IsText(p Payload) bool {
	_, ok := p.(*Text)
	return ok
}

// IsIcon reports whether payload is an icon payload.
func IsIcon(p Payload) bool {
	_, ok := p.(*Icon)
	return ok
}

// Significant reports whether payload produces visible content on its own.
func Significant(p Payload) bool {
	return IsText(p) || IsIcon(p)
}
