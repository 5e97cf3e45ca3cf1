// Package actions implements subcommands working with tags.
package actions

import (
	"context"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"golang.org/x/text/cases"

	"nametag/state"
	"nametag/tags"
)

// Commands returns definitions of all tag related subcommands.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "tags",
			Usage:  "Lists tags with their local overrides",
			Action: ListTags,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "resolved", Aliases: []string{"r"}, Usage: "list all properties with values they resolve to"},
			},
		},
		{
			Name:   "properties",
			Usage:  "Lists tag properties and values they accept",
			Action: ListProperties,
		},
		{
			Name:      "set",
			Usage:     "Changes property of a tag and saves tag store",
			Action:    SetProperty,
			ArgsUsage: "TAG PROPERTY [VALUE]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "inherit", Usage: "reset property to inherit its value from parent tag"},
				&cli.BoolFlag{Name: "disable", Usage: "disable property (it resolves as absent)"},
			},
			CustomHelpTemplate: fmt.Sprintf(`%s
TAG:
    key or name of the tag (see "tags" command)

PROPERTY:
    name of the property (see "properties" command)

VALUE:
    new value of the property, when absent property is enabled with its
    current value (flags are switched on)
`, cli.CommandHelpTemplate),
		},
		{
			Name:  "custom",
			Usage: "Manages custom tags",
			Commands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Adds custom tag and saves tag store",
					Action:    AddCustom,
					ArgsUsage: "NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "text", Usage: "`TEXT` of the tag, name of the tag if absent"},
						&cli.StringFlag{Name: "names", Usage: "`LIST` of names (or patterns) separated by commas tag applies to"},
					},
				},
				{
					Name:      "remove",
					Usage:     "Removes custom tag and saves tag store",
					Action:    RemoveCustom,
					ArgsUsage: "TAG",
				},
			},
		},
		{
			Name:  "preview",
			Usage: "Shows how names are decorated",
			Commands: []*cli.Command{
				{
					Name:      "chat",
					Usage:     "Decorates sender of a chat message",
					Action:    PreviewChat,
					ArgsUsage: "MESSAGE",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "sender", Aliases: []string{"s"}, Required: true, Usage: "`NAME` of the message sender"},
						&cli.StringFlag{Name: "role", Usage: "`ROLE` of the sender"},
					},
				},
				{
					Name:      "nameplate",
					Usage:     "Decorates nameplate",
					Action:    PreviewNameplate,
					ArgsUsage: "NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "title", Usage: "`TITLE` shown on the nameplate"},
						&cli.StringFlag{Name: "fc", Usage: "`FREE_COMPANY` shown on the nameplate"},
						&cli.StringFlag{Name: "role", Usage: "`ROLE` of the entity"},
					},
				},
			},
		},
	}
}

func output(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// loadTags returns tag tree, loading it on first use.
func loadTags(env *state.LocalEnv) (*tags.Tree, error) {
	if env.Tree == nil {
		if err := env.LoadTags(); err != nil {
			return nil, err
		}
	}
	return env.Tree, nil
}

// findTag looks tag up by key first and by name (ignoring case) after.
func findTag(tr *tags.Tree, name string) (*tags.Tag, error) {
	if t := tr.Find(name); t != nil {
		return t, nil
	}
	fold := cases.Fold()
	name = fold.String(strings.TrimSpace(name))

	var found *tags.Tag
	tr.Walk(func(t *tags.Tag, _ int) bool {
		if found == nil && fold.String(t.Name) == name {
			found = t
		}
		return found == nil
	})
	if found == nil {
		return nil, fmt.Errorf("tag %q was not found", name)
	}
	return found, nil
}

// ListTags writes tag tree to the output.
func ListTags(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tr, err := loadTags(state.EnvFromContext(ctx))
	if err != nil {
		return err
	}
	_, err = io.WriteString(output(cmd), tr.Dump(cmd.Bool("resolved")))
	return err
}

// ListProperties writes property names with their value hints.
func ListProperties(ctx context.Context, cmd *cli.Command) error {
	w := output(cmd)
	for _, id := range tags.AllProperties() {
		d, _ := tags.Describe(id)
		hint := d.Hint.String()
		if len(d.Choices) > 0 {
			hint += ": " + strings.Join(d.Choices, ", ")
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n", id, hint); err != nil {
			return err
		}
	}
	return nil
}
