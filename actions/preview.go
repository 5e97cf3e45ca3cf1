package actions

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"nametag/common"
	"nametag/compose"
	"nametag/feature"
	"nametag/payload"
	"nametag/state"
	"nametag/tags"
)

func newBuilder(env *state.LocalEnv, surface common.Surface) *compose.Builder {
	return compose.NewBuilder(compose.SourceFor(surface), env.Store, env.Log)
}

// PreviewChat decorates sender of a chat message and writes the result as
// markup.
func PreviewChat(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	tr, err := loadTags(env)
	if err != nil {
		return err
	}

	b := newBuilder(env, common.SurfaceChat)
	defer b.Close()

	sender := payload.NewText(cmd.String("sender"))
	msg := payload.NewString(sender, payload.NewText(": "+cmd.Args().Get(0)))
	e := tags.Entity{Name: sender.Value, Role: cmd.String("role")}

	if err := feature.NewChat(tr, b, env.Cfg, env.Log).Decorate(msg, sender, e); err != nil {
		return fmt.Errorf("unable to decorate message: %w", err)
	}
	_, err = fmt.Fprintln(output(cmd), msg)
	return err
}

// PreviewNameplate decorates nameplate and writes its elements as markup.
func PreviewNameplate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preview")

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no name has been specified")
	}
	tr, err := loadTags(env)
	if err != nil {
		return err
	}

	b := newBuilder(env, common.SurfaceNameplates)
	defer b.Close()

	np := &feature.Nameplate{
		Name:             payload.Plain(name),
		IsTitleVisible:   true,
		IsTitleAboveName: true,
	}
	if title := cmd.String("title"); len(title) > 0 {
		np.Title = payload.Plain(title)
	}
	if fc := cmd.String("fc"); len(fc) > 0 {
		np.FreeCompany = payload.Plain(fc)
	}
	e := tags.Entity{Name: name, Role: cmd.String("role")}

	if err := feature.NewNameplates(tr, b, env.Cfg, env.Log).Decorate(np, e); err != nil {
		return fmt.Errorf("unable to decorate nameplate: %w", err)
	}
	log.Debug("Nameplate decorated", zap.Bool("title visible", np.IsTitleVisible), zap.Bool("title above", np.IsTitleAboveName))

	lines := []struct {
		label string
		s     *payload.String
		show  bool
	}{
		{"title", np.Title, np.IsTitleVisible && np.IsTitleAboveName},
		{"name", np.Name, true},
		{"title", np.Title, np.IsTitleVisible && !np.IsTitleAboveName},
		{"free company", np.FreeCompany, true},
	}
	w := output(cmd)
	for _, l := range lines {
		if !l.show || l.s.Len() == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.s); err != nil {
			return err
		}
	}
	return nil
}
