package actions

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"nametag/inherit"
	"nametag/state"
	"nametag/tags"
)

// SetProperty changes single property of a tag and saves the store.
func SetProperty(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("set")

	if cmd.Args().Len() < 2 {
		return errors.New("tag and property must be specified")
	}
	if cmd.Bool("inherit") && cmd.Bool("disable") {
		return errors.New("--inherit and --disable cannot be used together")
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many values", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	tr, err := loadTags(env)
	if err != nil {
		return err
	}
	t, err := findTag(tr, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	id, err := tags.ParsePropertyID(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	p, err := t.Property(id)
	if err != nil {
		return err
	}

	switch {
	case cmd.Bool("inherit"):
		p.Reset()
	case cmd.Bool("disable"):
		p.Disable()
	case cmd.Args().Len() > 2:
		if err := p.SetText(cmd.Args().Get(2)); err != nil {
			return fmt.Errorf("bad value for %s: %w", id, err)
		}
		p.SetBehavior(inherit.BehaviorEnabled)
	default:
		p.Enable()
	}

	if err := env.Store.Save(tr); err != nil {
		return err
	}
	log.Info("Property changed", zap.Stringer("tag", t), zap.Stringer("property", id), zap.Stringer("behavior", p.Behavior()), zap.String("value", p.String()))
	return nil
}

// AddCustom creates custom tag and saves the store.
func AddCustom(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("custom")

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no tag name has been specified")
	}

	tr, err := loadTags(env)
	if err != nil {
		return err
	}
	t, err := tr.AddCustom(name)
	if err != nil {
		return err
	}
	text := cmd.String("text")
	if len(text) == 0 {
		text = name
	}
	t.Text.SetValue(text)
	t.GameObjectNamesToApplyTo.SetValue(cmd.String("names"))

	if err := env.Store.Save(tr); err != nil {
		return err
	}
	log.Info("Custom tag added", zap.Stringer("tag", t))
	_, err = fmt.Fprintln(output(cmd), t.Key)
	return err
}

// RemoveCustom removes custom tag and saves the store.
func RemoveCustom(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("custom")

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no tag has been specified")
	}

	tr, err := loadTags(env)
	if err != nil {
		return err
	}
	t, err := findTag(tr, name)
	if err != nil {
		return err
	}
	if !tr.RemoveCustom(t.Key) {
		return fmt.Errorf("tag %q is not a custom tag", t.Name)
	}

	if err := env.Store.Save(tr); err != nil {
		return err
	}
	log.Info("Custom tag removed", zap.Stringer("tag", t))
	return nil
}
