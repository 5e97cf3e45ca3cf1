package feature

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"go.uber.org/zap/zaptest"

	"nametag/common"
	"nametag/compose"
	"nametag/config"
	"nametag/inherit"
	"nametag/payload"
	"nametag/tags"
)

func newTree(t *testing.T) *tags.Tree {
	t.Helper()
	tr := tags.NewTree()
	friends, err := tr.AddCustom("Friends")
	if err != nil {
		t.Fatal(err)
	}
	friends.Text.SetValue("Friend")
	friends.TextColor.Set(inherit.BehaviorEnabled, 45)
	friends.GameObjectNamesToApplyTo.SetValue("Alice")
	return tr
}

func newChat(t *testing.T, tr *tags.Tree, cfg *config.Config) *Chat {
	t.Helper()
	b := compose.NewBuilder(compose.ChatSource, nil, zaptest.NewLogger(t))
	t.Cleanup(b.Close)
	return NewChat(tr, b, cfg, zaptest.NewLogger(t))
}

func newNameplates(t *testing.T, tr *tags.Tree, cfg *config.Config) *Nameplates {
	t.Helper()
	b := compose.NewBuilder(compose.NameplateSource, nil, zaptest.NewLogger(t))
	t.Cleanup(b.Close)
	return NewNameplates(tr, b, cfg, zaptest.NewLogger(t))
}

func message(sender *payload.Text) *payload.String {
	return payload.NewString(payload.NewText("["), sender, payload.NewText("]: hello"))
}

func TestChat_Decorate(t *testing.T) {
	tests := []struct {
		name  string
		e     tags.Entity
		setup func(tr *tags.Tree)
		want  string
	}{
		{
			name: "custom tag",
			e:    tags.Entity{Name: "Alice"},
			want: "[<color(45)>Friend</color> Alice]: hello",
		},
		{
			name: "role and custom tag",
			e:    tags.Entity{Name: "alice", Role: "Tank"},
			want: "[<color(546)>Tank </color><color(45)>Friend</color> Alice]: hello",
		},
		{
			name: "not applicable",
			e:    tags.Entity{Name: "Bob"},
			want: "[Alice]: hello",
		},
		{
			name: "after",
			e:    tags.Entity{Name: "Alice"},
			setup: func(tr *tags.Tree) {
				tr.CustomRoot().TagPositionInChat.Set(inherit.BehaviorEnabled, common.TagPositionAfter)
			},
			want: "[Alice <color(45)>Friend</color>]: hello",
		},
		{
			name: "replace",
			e:    tags.Entity{Name: "Alice"},
			setup: func(tr *tags.Tree) {
				tr.CustomRoot().TagPositionInChat.Set(inherit.BehaviorEnabled, common.TagPositionReplace)
			},
			want: "[<color(45)>Friend</color>]: hello",
		},
		{
			name: "hidden in chat",
			e:    tags.Entity{Name: "Alice"},
			setup: func(tr *tags.Tree) {
				tr.CustomRoot().IsTextVisibleInChat.Disable()
			},
			want: "[Alice]: hello",
		},
		{
			name: "no position",
			e:    tags.Entity{Name: "Alice"},
			setup: func(tr *tags.Tree) {
				tr.Root().TagPositionInChat.Reset()
			},
			want: "[Alice]: hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTree(t)
			if tt.setup != nil {
				tt.setup(tr)
			}
			c := newChat(t, tr, nil)

			sender := payload.NewText("Alice")
			msg := message(sender)
			if err := c.Decorate(msg, sender, tt.e); err != nil {
				t.Fatalf("Decorate() error = %v", err)
			}
			if got := msg.String(); got != tt.want {
				t.Errorf("Decorate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChat_Repeated(t *testing.T) {
	c := newChat(t, newTree(t), nil)
	for range 3 {
		sender := payload.NewText("Alice")
		msg := message(sender)
		if err := c.Decorate(msg, sender, tags.Entity{Name: "Alice"}); err != nil {
			t.Fatal(err)
		}
		if got, want := msg.String(), "[<color(45)>Friend</color> Alice]: hello"; got != want {
			t.Fatalf("Decorate() = %q, want %q", got, want)
		}
	}
}

func TestChat_Errors(t *testing.T) {
	c := newChat(t, newTree(t), nil)

	if err := c.Decorate(nil, nil, tags.Entity{Name: "Alice"}); !errors.Is(err, compose.ErrNoTarget) {
		t.Errorf("Decorate(nil) error = %v", err)
	}

	msg := message(payload.NewText("Alice"))
	before := msg.String()
	err := c.Decorate(msg, payload.NewText("Alice"), tags.Entity{Name: "Alice"})
	if !errors.Is(err, compose.ErrAnchorNotFound) {
		t.Errorf("Decorate() error = %v", err)
	}
	if msg.String() != before {
		t.Errorf("Decorate() modified message on error: %q", msg)
	}
}

func TestChat_Randomize(t *testing.T) {
	cfg := &config.Config{Development: config.DevelopmentConfig{RandomizeNames: true}}
	c := newChat(t, newTree(t), cfg)

	sender := payload.NewText("Alice")
	msg := message(sender)
	if err := c.Decorate(msg, sender, tags.Entity{Name: "Alice"}); err != nil {
		t.Fatal(err)
	}
	if msg.IndexOf(sender) != -1 {
		t.Error("original name is still in the message")
	}
	want := "[<color(45)>Friend</color> " + RandomName("Alice") + "]: hello"
	if got := msg.String(); got != want {
		t.Errorf("Decorate() = %q, want %q", got, want)
	}
}

func nameplate() *Nameplate {
	return &Nameplate{
		Name:        payload.Plain("Alice"),
		Title:       payload.Plain("The Brave"),
		FreeCompany: payload.Plain("FC"),
	}
}

func TestNameplates_Decorate(t *testing.T) {
	n := newNameplates(t, newTree(t), nil)

	np := nameplate()
	if err := n.Decorate(np, tags.Entity{Name: "Alice", Role: "tank"}); err != nil {
		t.Fatal(err)
	}
	if got, want := np.Name.String(), "Alice <color(45)>Friend</color>"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := np.Title.String(), "<color(546)>Tank</color>"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got, want := np.FreeCompany.String(), "FC"; got != want {
		t.Errorf("FreeCompany = %q, want %q", got, want)
	}
}

func TestNameplates_MissingElement(t *testing.T) {
	n := newNameplates(t, newTree(t), nil)

	np := &Nameplate{Name: payload.Plain("Bob")}
	if err := n.Decorate(np, tags.Entity{Name: "Bob", Role: "healer"}); err != nil {
		t.Fatal(err)
	}
	if np.Title == nil || np.Title.String() != "<color(43)>Healer</color>" {
		t.Errorf("Title = %q", np.Title)
	}
	if np.FreeCompany != nil {
		t.Error("untouched element was created")
	}

	if err := n.Decorate(nil, tags.Entity{Name: "Bob"}); !errors.Is(err, compose.ErrNoTarget) {
		t.Errorf("Decorate(nil) error = %v", err)
	}
}

func TestNameplates_Options(t *testing.T) {
	tests := []struct {
		name      string
		opts      config.NameplatesConfig
		e         tags.Entity
		visible   bool
		above     bool
		fcCleared bool
	}{
		{
			name:    "defaults keep flags",
			e:       tags.Entity{Name: "Bob"},
			visible: true,
			above:   true,
		},
		{
			name:    "title never",
			opts:    config.NameplatesConfig{TitleVisibility: config.NameplateTitleVisibilityNever},
			e:       tags.Entity{Name: "Bob", Role: "dps"},
			visible: false,
			above:   true,
		},
		{
			name:    "title when has tags, with tags",
			opts:    config.NameplatesConfig{TitleVisibility: config.NameplateTitleVisibilityWhenHasTags},
			e:       tags.Entity{Name: "Bob", Role: "dps"},
			visible: true,
			above:   true,
		},
		{
			name:    "title when has tags, without tags",
			opts:    config.NameplatesConfig{TitleVisibility: config.NameplateTitleVisibilityWhenHasTags},
			e:       tags.Entity{Name: "Bob"},
			visible: false,
			above:   true,
		},
		{
			name:    "below name",
			opts:    config.NameplatesConfig{TitlePosition: config.NameplateTitlePositionAlwaysBelowName},
			e:       tags.Entity{Name: "Bob"},
			visible: true,
			above:   false,
		},
		{
			name:      "free company never",
			opts:      config.NameplatesConfig{FreeCompanyVisibility: config.NameplateFreeCompanyVisibilityNever},
			e:         tags.Entity{Name: "Bob"},
			visible:   true,
			above:     true,
			fcCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newNameplates(t, newTree(t), &config.Config{Nameplates: tt.opts})
			np := nameplate()
			np.IsTitleVisible, np.IsTitleAboveName = true, true
			if err := n.Decorate(np, tt.e); err != nil {
				t.Fatal(err)
			}
			if np.IsTitleVisible != tt.visible {
				t.Errorf("IsTitleVisible = %v, want %v", np.IsTitleVisible, tt.visible)
			}
			if np.IsTitleAboveName != tt.above {
				t.Errorf("IsTitleAboveName = %v, want %v", np.IsTitleAboveName, tt.above)
			}
			if cleared := np.FreeCompany.Len() == 0; cleared != tt.fcCleared {
				t.Errorf("FreeCompany = %q", np.FreeCompany)
			}
		})
	}
}

func TestNameplates_Randomize(t *testing.T) {
	cfg := &config.Config{Development: config.DevelopmentConfig{RandomizeNames: true}}
	n := newNameplates(t, newTree(t), cfg)

	np := nameplate()
	if err := n.Decorate(np, tags.Entity{Name: "Alice"}); err != nil {
		t.Fatal(err)
	}
	if got, want := np.Name.String(), RandomName("Alice")+" <color(45)>Friend</color>"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
}

func TestRandomName(t *testing.T) {
	a := RandomName("Alice Smith")
	if a != RandomName("alice smith ") {
		t.Error("RandomName() depends on case or surrounding spaces")
	}
	if a == RandomName("Bob Jones") {
		t.Error("RandomName() produced the same name for different inputs")
	}

	parts := strings.Split(a, " ")
	if len(parts) != 2 {
		t.Fatalf("RandomName() = %q, want two parts", a)
	}
	for _, p := range parts {
		if len(p) < 2 || !unicode.IsUpper([]rune(p)[0]) {
			t.Errorf("RandomName() part %q is not capitalized", p)
		}
	}
}
