package input

import (
	"errors"
	"testing"

	"github.com/san-kum/armchain/internal/clock"
)

func TestHandle_F3Twice(t *testing.T) {
	c := NewController(DefaultManualSpeed)
	var s clock.State

	c.Handle(KeyPress{Key: KeyF3}, &s)
	if !s.ShowDebug {
		t.Fatal("first F3 should show debug")
	}
	c.Handle(KeyPress{Key: KeyF3}, &s)
	if s.ShowDebug {
		t.Error("second F3 should hide debug")
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		action Action
		want   clock.State
	}{
		{"f3", KeyPress{Key: KeyF3}, ActionNone, clock.State{T: 100, ShowDebug: true}},
		{"f3 with shift", KeyPress{Key: KeyF3, Mods: ModShift}, ActionNone, clock.State{T: 100}},
		{"space", KeyPress{Key: KeySpace}, ActionNone, clock.State{T: 100, Paused: true}},
		{"space with ctrl", KeyPress{Key: KeySpace, Mods: ModCtrl}, ActionNone, clock.State{T: 100}},
		{"left", KeyPress{Key: KeyLeft}, ActionNone, clock.State{T: 97}},
		{"right", KeyPress{Key: KeyRight}, ActionNone, clock.State{T: 103}},
		{"right with alt", KeyPress{Key: KeyRight, Mods: ModAlt}, ActionNone, clock.State{T: 100}},
		{"escape", KeyPress{Key: KeyEscape}, ActionQuit, clock.State{T: 100}},
		{"escape with mods", KeyPress{Key: KeyEscape, Mods: ModShift | ModSuper}, ActionQuit, clock.State{T: 100}},
		{"q", KeyPress{Key: KeyQ}, ActionQuit, clock.State{T: 100}},
		{"q with ctrl", KeyPress{Key: KeyQ, Mods: ModCtrl}, ActionNone, clock.State{T: 100}},
		{"click", MouseClick{Button: 1, X: 5, Y: 9}, ActionQuit, clock.State{T: 100}},
		{"other key", KeyPress{Key: KeyOther}, ActionNone, clock.State{T: 100}},
		{"nil event", nil, ActionNone, clock.State{T: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(3)
			s := clock.State{T: 100}
			if got := c.Handle(tt.ev, &s); got != tt.action {
				t.Errorf("action = %v, want %v", got, tt.action)
			}
			if s != tt.want {
				t.Errorf("state = %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestHandle_NudgeWhilePaused(t *testing.T) {
	c := NewController(DefaultManualSpeed)
	s := clock.State{Paused: true}
	c.Handle(KeyPress{Key: KeyLeft}, &s)
	c.Handle(KeyPress{Key: KeyLeft}, &s)
	if s.T != -2*DefaultManualSpeed {
		t.Errorf("expected t=%d, got %d", -2*DefaultManualSpeed, s.T)
	}
}

func TestKeyString(t *testing.T) {
	if KeyF3.String() != "f3" || Key(99).String() != "key(99)" {
		t.Errorf("unexpected key names %q %q", KeyF3, Key(99))
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    Key
		wantErr bool
	}{
		{"f3", KeyF3, false},
		{"Space", KeySpace, false},
		{"esc", KeyEscape, false},
		{"escape", KeyEscape, false},
		{" q ", KeyQ, false},
		{"left", KeyLeft, false},
		{"right", KeyRight, false},
		{"other", KeyOther, true},
		{"tab", KeyOther, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownKey) {
				t.Errorf("expected ErrUnknownKey, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseMods(t *testing.T) {
	m, err := ParseMods([]string{"shift", "Ctrl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != ModShift|ModCtrl {
		t.Errorf("expected shift|ctrl, got %v", m)
	}

	if m, err := ParseMods(nil); err != nil || m != ModNone {
		t.Errorf("expected none, got %v, %v", m, err)
	}

	if _, err := ParseMods([]string{"hyper"}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}
