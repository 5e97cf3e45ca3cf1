package feature

import (
	"go.uber.org/zap"

	"nametag/common"
	"nametag/compose"
	"nametag/config"
	"nametag/payload"
	"nametag/tags"
)

// Nameplate is what is shown above entity: its name, title and free
// company, each of them rich text.
type Nameplate struct {
	Name        *payload.String
	Title       *payload.String
	FreeCompany *payload.String

	IsTitleVisible   bool
	IsTitleAboveName bool
}

func (np *Nameplate) element(el common.NameplateElement) **payload.String {
	switch el {
	case common.NameplateElementName:
		return &np.Name
	case common.NameplateElementTitle:
		return &np.Title
	case common.NameplateElementFreeCompany:
		return &np.FreeCompany
	}
	return nil
}

var elements = []common.NameplateElement{
	common.NameplateElementName,
	common.NameplateElementTitle,
	common.NameplateElementFreeCompany,
}

// Nameplates decorates nameplates.
type Nameplates struct {
	tree      *tags.Tree
	builder   *compose.Builder
	opts      config.NameplatesConfig
	randomize bool
	log       *zap.Logger
}

// NewNameplates returns nameplate decorator. Builder is expected to use
// nameplate source.
func NewNameplates(tree *tags.Tree, builder *compose.Builder, cfg *config.Config, log *zap.Logger) *Nameplates {
	if log == nil {
		log = zap.NewNop()
	}
	n := &Nameplates{
		tree:    tree,
		builder: builder,
		log:     log.Named("nameplates"),
	}
	if cfg != nil {
		n.opts = cfg.Nameplates
		n.randomize = cfg.Development.RandomizeNames
	}
	return n
}

// Decorate splices tags applicable to the entity into nameplate elements
// they target and then applies visibility and placement options.
func (n *Nameplates) Decorate(np *Nameplate, e tags.Entity) error {
	if np == nil {
		return compose.ErrNoTarget
	}

	changes := make(map[common.NameplateElement]compose.Changes, len(elements))
	for _, t := range n.tree.Applicable(e) {
		target, ok := t.TagTargetInNameplates.Effective()
		if !ok {
			continue
		}
		pos, ok := t.TagPositionInNameplates.Effective()
		if !ok {
			continue
		}
		ps := n.builder.Payloads(t)
		if len(ps) == 0 {
			continue
		}
		if changes[target] == nil {
			changes[target] = compose.Changes{}
		}
		changes[target].Add(pos, ps)
		n.log.Debug("Tag applied", zap.Stringer("tag", t), zap.Stringer("element", target), zap.Stringer("position", pos))
	}

	if n.randomize && np.Name != nil {
		np.Name.Reset(payload.NewText(RandomName(np.Name.TextValue())))
	}

	for _, el := range elements {
		c := changes[el]
		if c.Empty() {
			continue
		}
		s := np.element(el)
		if *s == nil {
			*s = payload.NewString()
		}
		if err := compose.Apply(*s, c, nil); err != nil {
			return err
		}
	}

	if n.opts.FreeCompanyVisibility == config.NameplateFreeCompanyVisibilityNever && np.FreeCompany != nil {
		np.FreeCompany.Reset()
	}

	switch n.opts.TitleVisibility {
	case config.NameplateTitleVisibilityAlways:
		np.IsTitleVisible = true
	case config.NameplateTitleVisibilityNever:
		np.IsTitleVisible = false
	case config.NameplateTitleVisibilityWhenHasTags:
		np.IsTitleVisible = !changes[common.NameplateElementTitle].Empty()
	}

	switch n.opts.TitlePosition {
	case config.NameplateTitlePositionAlwaysAboveName:
		np.IsTitleAboveName = true
	case config.NameplateTitlePositionAlwaysBelowName:
		np.IsTitleAboveName = false
	}
	return nil
}
