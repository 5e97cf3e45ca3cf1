package tags

import (
	"nametag/common"
	"nametag/inherit"
)

//go:generate go tool go-enum --marshal --names

// Stable identifiers of tag properties. Names are used as keys in the tag
// store and on the command line.
// ENUM(icon, is_icon_visible_in_chat, is_icon_visible_in_nameplates, text, text_color, text_glow_color, is_text_italic, is_text_visible_in_chat, is_text_visible_in_nameplates, tag_position_in_chat, tag_position_in_nameplates, tag_target_in_nameplates, game_object_names_to_apply_to)
type PropertyID int

// How a property is best presented to a user.
// ENUM(checkbox, color, icon, text, choice)
type Hint int

// Descriptor describes a property independently of any particular tag.
type Descriptor struct {
	ID   PropertyID
	Hint Hint
	// Shared is set for text values: they belong to the tag which owns them
	// and are edited in place, everything else is a plain copied value.
	Shared bool
	// Choices lists allowed values for Hint == HintChoice.
	Choices []string
}

// Entry pairs property with its identifier on a particular tag.
type Entry struct {
	ID       PropertyID
	Property inherit.Property
}

var descriptors = func() map[PropertyID]Descriptor {
	m := map[PropertyID]Descriptor{
		PropertyIDIcon:                      {Hint: HintIcon},
		PropertyIDIsIconVisibleInChat:       {Hint: HintCheckbox},
		PropertyIDIsIconVisibleInNameplates: {Hint: HintCheckbox},
		PropertyIDText:                      {Hint: HintText, Shared: true},
		PropertyIDTextColor:                 {Hint: HintColor},
		PropertyIDTextGlowColor:             {Hint: HintColor},
		PropertyIDIsTextItalic:              {Hint: HintCheckbox},
		PropertyIDIsTextVisibleInChat:       {Hint: HintCheckbox},
		PropertyIDIsTextVisibleInNameplates: {Hint: HintCheckbox},
		PropertyIDTagPositionInChat:         {Hint: HintChoice, Choices: positionChoices()},
		PropertyIDTagPositionInNameplates:   {Hint: HintChoice, Choices: positionChoices()},
		PropertyIDTagTargetInNameplates:     {Hint: HintChoice, Choices: elementChoices()},
		PropertyIDGameObjectNamesToApplyTo:  {Hint: HintText, Shared: true},
	}
	for id, d := range m {
		d.ID = id
		m[id] = d
	}
	return m
}()

// Describe returns descriptor of the property.
func Describe(id PropertyID) (Descriptor, bool) {
	d, ok := descriptors[id]
	return d, ok
}

// AllProperties returns property identifiers in declaration order.
func AllProperties() []PropertyID {
	ids := make([]PropertyID, 0, len(descriptors))
	for _, name := range PropertyIDNames() {
		id, _ := ParsePropertyID(name)
		ids = append(ids, id)
	}
	return ids
}

func positionChoices() []string { return common.TagPositionNames() }
func elementChoices() []string  { return common.NameplateElementNames() }
