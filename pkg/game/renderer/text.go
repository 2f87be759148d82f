package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"

	"crazymaze/pkg/engine/input"
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHint
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSuccess
	StyleSubtle
	StyleEffect
)

// Styler applies a style to text. The terminal front end returns ANSI
// colours; the window front end returns the text unchanged and colours it
// when drawing.
type Styler interface {
	StyleText(text string, style TextStyle) string
}

// PlainStyler leaves text unstyled
type PlainStyler struct{}

// StyleText returns text as is
func (PlainStyler) StyleText(text string, _ TextStyle) string { return text }

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var (
	regexpTranslate       = regexp.MustCompile(`GT{([A-Z0-9_]+)}`)
	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([^{}]+)}`)
)

// ConfigureLocale points gettext at dir/<lang>/LC_MESSAGES/default.po
func ConfigureLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}

// Translate looks up a message ID. Unknown IDs come back unchanged and the
// empty key stays empty.
func Translate(key string, args ...any) string {
	if key == "" {
		return ""
	}
	return dynamicGet(key, args...)
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, ACTION{Name} highlights the first letter, DENIED{...},
// SUCCESS{...} and SUBTLE{...} apply their styles. GT runs first, so a
// translation may sit inside a style, as in SUBTLE{GT{KEY}}.
func FormatText(s Styler, msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	ret = regexpTranslate.ReplaceAllStringFunc(ret, func(m string) string {
		return dynamicGet(regexpTranslate.FindStringSubmatch(m)[1])
	})

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		switch match[1] {
		case "ACTION", "DENIED", "SUCCESS", "SUBTLE":
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", match[1], match[2])
		}
	}

	// Styler output is never rescanned; some stylers emit markup of their own.
	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(m string) string {
		match := regexpStringFunctions.FindStringSubmatch(m)
		operand := match[2]
		switch match[1] {
		case "ACTION":
			_, n := utf8.DecodeRuneInString(operand)
			return s.StyleText(operand[:n], StyleActionShort) + s.StyleText(operand[n:], StyleAction)
		case "DENIED":
			return s.StyleText(operand, StyleDenied)
		case "SUCCESS":
			return s.StyleText(operand, StyleSuccess)
		}
		return s.StyleText(operand, StyleSubtle)
	})
}

// EffectLabel returns the translated name of a status effect
func EffectLabel(kind entities.EffectKind) string {
	if kind == entities.EffectNone {
		return ""
	}
	return dynamicGet("EFFECT_" + strings.ToUpper(kind.String()))
}

// StatusLine returns the elapsed time and step counter
func StatusLine(snap state.Snapshot) string {
	return Translate("STATUS_LINE", snap.ElapsedSeconds, snap.Steps)
}

// EffectLine returns the active effect with its remaining seconds, or ""
func EffectLine(snap state.Snapshot) string {
	if snap.Effect == entities.EffectNone {
		return ""
	}
	return Translate("EFFECT_LINE", EffectLabel(snap.Effect), (snap.EffectLeftMs+999)/1000)
}

// HintLine returns the translated hint while it is visible
func HintLine(snap state.Snapshot) string {
	if !snap.HintVisible {
		return ""
	}
	return Translate(snap.HintKey)
}

// Banner returns the big outcome message once a session ends
func Banner(snap state.Snapshot) string {
	switch {
	case snap.Won:
		return Translate("BANNER_WIN")
	case snap.Lost:
		return Translate("BANNER_LOST")
	}
	return ""
}

// BannerLine is Banner styled as success or failure, or "" mid-session
func BannerLine(s Styler, snap state.Snapshot) string {
	switch {
	case snap.Won:
		return FormatText(s, "SUCCESS{GT{BANNER_WIN}}")
	case snap.Lost:
		return FormatText(s, "DENIED{GT{BANNER_LOST}}")
	}
	return ""
}

// helpActions are the commands listed in the help line, in display order
var helpActions = []input.Action{
	input.ActionNewMaze,
	input.ActionReset,
	input.ActionDumpMap,
	input.ActionQuit,
}

// HelpLine lists the command keys, e.g. "n New Maze  r Reset"
func HelpLine(s Styler) string {
	bindings := input.GetBindingsByAction()
	parts := []string{FormatText(s, "SUBTLE{GT{HELP_MOVE}}")}
	for _, act := range helpActions {
		var codes []string
		for _, code := range bindings[act] {
			if !strings.HasPrefix(code, "gamepad_") {
				codes = append(codes, code)
			}
		}
		if len(codes) == 0 {
			continue
		}
		keys := s.StyleText(strings.Join(codes, "/"), StyleActionShort)
		parts = append(parts, keys+" "+FormatText(s, "ACTION{%s}", input.ActionName(act)))
	}
	return strings.Join(parts, "  ")
}
