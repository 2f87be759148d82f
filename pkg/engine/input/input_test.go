package input

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"crazymaze/pkg/engine/world"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"letters", []byte("wN"), []string{"w", "n"}},
		{"csi arrows", []byte("\x1b[A\x1b[D"), []string{"arrow_up", "arrow_left"}},
		{"ss3 arrow", []byte("\x1bOC"), []string{"arrow_right"}},
		{"lone escape", []byte{0x1b}, []string{"escape"}},
		{"ctrl c", []byte{3}, []string{"ctrl_c"}},
		{"unknown sequence dropped", []byte("\x1b[Zq"), []string{"q"}},
		{"control bytes ignored", []byte{1, 2, 'r'}, []string{"r"}},
		{"f9", []byte("\x1b[20~"), []string{"f9"}},
		{"f9 with modifier", []byte("\x1b[20;2~w"), []string{"f9", "w"}},
		{"ctrl up is plain up", []byte("\x1b[1;5A"), []string{"arrow_up"}},
		{"shift left is plain left", []byte("\x1b[1;2D"), []string{"arrow_left"}},
		{"unknown tilde key dropped", []byte("\x1b[3~d"), []string{"d"}},
		{"truncated csi dropped", []byte("\x1b[1;5"), nil},
		{"escape before letter", []byte("\x1bq"), []string{"escape", "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_F9DumpsMap(t *testing.T) {
	codes := Decode([]byte("\x1b[20~"))
	if len(codes) != 1 {
		t.Fatalf("Decode(F9) = %v, want one code", codes)
	}
	if got := Resolve(RawInput{Device: DeviceTerminal, Code: codes[0]}).Action; got != ActionDumpMap {
		t.Errorf("F9 resolved to %s, want %s", ActionName(got), ActionName(ActionDumpMap))
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"a", ActionMoveWest},
		{"j", ActionMoveSouth},
		{"d", ActionMoveEast},
		{"n", ActionNewMaze},
		{"r", ActionReset},
		{"f9", ActionDumpMap},
		{"escape", ActionQuit},
		{"z", ActionNone},
	}

	for _, tt := range tests {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestIntentDirection(t *testing.T) {
	dir, ok := Intent{Action: ActionMoveWest}.Direction()
	if !ok || dir != world.West {
		t.Errorf("Direction() = %v, %v, want West, true", dir, ok)
	}
	if _, ok := (Intent{Action: ActionReset}).Direction(); ok {
		t.Error("Reset should not carry a direction")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()[ActionMoveNorth]
	want := []string{"arrow_up", "gamepad_dpad_up", "k", "w"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bindings for Move North = %v, want %v", got, want)
	}
}

func TestReadTerminal_ForwardsUntilEOF(t *testing.T) {
	out := make(chan RawInput, 8)
	ReadTerminal(context.Background(), strings.NewReader("w\x1b[Bq"), out)

	var codes []string
	for ev := range out {
		if ev.Device != DeviceTerminal {
			t.Errorf("Device = %v, want DeviceTerminal", ev.Device)
		}
		codes = append(codes, ev.Code)
	}
	want := []string{"w", "arrow_down", "q"}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("codes = %v, want %v", codes, want)
	}
}
