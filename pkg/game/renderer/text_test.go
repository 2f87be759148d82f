package renderer

import (
	"strings"
	"testing"

	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/state"
)

type bracketStyler struct{}

func (bracketStyler) StyleText(text string, style TextStyle) string {
	if style == StyleNormal {
		return text
	}
	return "[" + text + "]"
}

func TestFormatTextMarkup(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"plain %d", "plain 3"},
		{"ACTION{Quit}", "[Q][uit]"},
		{"DENIED{no}", "[no]"},
		{"SUCCESS{yes} SUBTLE{meh}", "[yes] [meh]"},
		{"GT{UNKNOWN_KEY}", "UNKNOWN_KEY"},
		{"SUBTLE{GT{UNKNOWN_KEY}}", "[UNKNOWN_KEY]"},
		{"ACTION{迷宫}", "[迷][宫]"},
		{"DENIED{CAUGHT! Press N.}", "[CAUGHT! Press N.]"},
	}
	for _, tt := range tests {
		if got := FormatText(bracketStyler{}, tt.msg, 3); !strings.HasPrefix(got, tt.want) {
			t.Errorf("FormatText(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestFormatTextUnknownFunction(t *testing.T) {
	got := FormatText(PlainStyler{}, "BOGUS{x}")
	if !strings.HasPrefix(got, "ERROR") {
		t.Errorf("unknown markup function should report an error, got %q", got)
	}
}

func TestHintLineOnlyWhileVisible(t *testing.T) {
	snap := state.Snapshot{HintKey: "HINT_WIN", HintVisible: false}
	if got := HintLine(snap); got != "" {
		t.Errorf("hidden hint rendered as %q", got)
	}
	snap.HintVisible = true
	if got := HintLine(snap); got == "" {
		t.Error("visible hint rendered empty")
	}
}

func TestTranslateWithLocale(t *testing.T) {
	ConfigureLocale("../../../locales", "en_GB")
	defer ConfigureLocale("../../../locales", "none")

	if got := Translate("HINT_WIN"); got == "HINT_WIN" {
		t.Errorf("HINT_WIN was not translated")
	}
	if got := EffectLabel(entities.EffectSpeed); got != "Speed" {
		t.Errorf("EffectLabel(Speed) = %q, want Speed", got)
	}
	if got := EffectLabel(entities.EffectNone); got != "" {
		t.Errorf("EffectLabel(None) = %q, want empty", got)
	}
	if got := Translate(""); got != "" {
		t.Errorf("empty key translated to %q", got)
	}
}

func TestHelpLineListsCommands(t *testing.T) {
	line := HelpLine(PlainStyler{})
	for _, want := range []string{"New Maze", "Reset", "Dump Map", "Quit"} {
		if !strings.Contains(line, want) {
			t.Errorf("help line %q missing %q", line, want)
		}
	}
}

// markupStyler emits markup of its own, like the window front end
type markupStyler struct{}

func (markupStyler) StyleText(text string, _ TextStyle) string {
	return "SUBTLE{" + text + "}"
}

func TestFormatTextDoesNotRescanStyledOutput(t *testing.T) {
	got := FormatText(markupStyler{}, "SUCCESS{done}")
	if got != "SUBTLE{done}" {
		t.Errorf("FormatText = %q, want SUBTLE{done}", got)
	}
}

func TestBannerLine(t *testing.T) {
	tests := []struct {
		name string
		snap state.Snapshot
		want string
	}{
		{"running", state.Snapshot{}, ""},
		{"won", state.Snapshot{Won: true}, "[BANNER_WIN]"},
		{"lost", state.Snapshot{Lost: true}, "[BANNER_LOST]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BannerLine(bracketStyler{}, tt.snap); got != tt.want {
				t.Errorf("BannerLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpLineStylesActionNames(t *testing.T) {
	line := HelpLine(bracketStyler{})
	for _, want := range []string{"[HELP_MOVE]", "[Q][uit]", "[N][ew Maze]"} {
		if !strings.Contains(line, want) {
			t.Errorf("help line %q missing %q", line, want)
		}
	}
}
