package compose

import (
	"slices"

	"nametag/common"
	"nametag/payload"
)

// Normalize makes sure there is exactly one space between any two text
// payloads which are not separated by an icon. Then, depending on position,
// pads the edge facing the anchor: trailing space for "before" when the last
// significant payload is text, leading space for "after" when the first one
// is text. Lists without text or icons are returned as is.
func Normalize(ps []payload.Payload, pos common.TagPosition) []payload.Payload {
	if len(ps) == 0 {
		return ps
	}

	// Collected from the end, so inserting in collection order never shifts
	// indices still to be used.
	var at []int
	lastText := -1
	for i := len(ps) - 1; i >= 0; i-- {
		switch ps[i].(type) {
		case *payload.Icon:
			lastText = -1
		case *payload.Text:
			if lastText != -1 {
				at = append(at, i+1)
			}
			lastText = i
		}
	}
	for _, i := range at {
		ps = slices.Insert(ps, i, payload.Payload(payload.Space()))
	}

	first := slices.IndexFunc(ps, payload.Significant)
	if first < 0 {
		return ps
	}
	switch pos {
	case common.TagPositionBefore:
		last := len(ps) - 1
		for !payload.Significant(ps[last]) {
			last--
		}
		if payload.IsText(ps[last]) {
			ps = append(ps, payload.Space())
		}
	case common.TagPositionAfter:
		if payload.IsText(ps[first]) {
			ps = slices.Insert(ps, 0, payload.Payload(payload.Space()))
		}
	}
	return ps
}
