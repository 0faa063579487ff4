package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/armchain/internal/clock"
)

const DefaultManualSpeed = 5

var ErrUnknownKey = errors.New("input: unknown key")

type Key int

const (
	KeyOther Key = iota
	KeyF3
	KeySpace
	KeyEscape
	KeyQ
	KeyLeft
	KeyRight
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyF3:     "f3",
	KeySpace:  "space",
	KeyEscape: "escape",
	KeyQ:      "q",
	KeyLeft:   "left",
	KeyRight:  "right",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey maps a key name such as "f3" or "Space" to a Key. "esc" is
// accepted for escape.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "esc" {
		return KeyEscape, nil
	}
	for k, n := range keyNames {
		if k != KeyOther && n == name {
			return k, nil
		}
	}
	return KeyOther, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Mod is a bitmask of held modifier keys. The zero value means none.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

const ModNone Mod = 0

var modNames = map[string]Mod{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"super": ModSuper,
}

// ParseMods combines modifier names into a Mod.
func ParseMods(names []string) (Mod, error) {
	var m Mod
	for _, name := range names {
		bit, ok := modNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return ModNone, fmt.Errorf("%w: modifier %q", ErrUnknownKey, name)
		}
		m |= bit
	}
	return m, nil
}

type Event interface {
	isEvent()
}

type KeyPress struct {
	Key  Key
	Mods Mod
}

type MouseClick struct {
	Button int
	X, Y   float64
}

func (KeyPress) isEvent()   {}
func (MouseClick) isEvent() {}

type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

func (a Action) String() string {
	if a == ActionQuit {
		return "quit"
	}
	return "none"
}

type Controller struct {
	ManualSpeed int64
}

func NewController(manualSpeed int64) *Controller {
	return &Controller{ManualSpeed: manualSpeed}
}

// Handle applies ev to s and reports whether the caller should quit.
func (c *Controller) Handle(ev Event, s *clock.State) Action {
	switch e := ev.(type) {
	case KeyPress:
		return c.handleKey(e, s)
	case MouseClick:
		return ActionQuit
	}
	return ActionNone
}

func (c *Controller) handleKey(e KeyPress, s *clock.State) Action {
	// Escape quits regardless of modifiers.
	if e.Key == KeyEscape {
		return ActionQuit
	}
	if e.Mods != ModNone {
		return ActionNone
	}

	switch e.Key {
	case KeyF3:
		s.ToggleDebug()
	case KeySpace:
		s.TogglePause()
	case KeyLeft:
		s.Nudge(-c.ManualSpeed)
	case KeyRight:
		s.Nudge(c.ManualSpeed)
	case KeyQ:
		return ActionQuit
	}
	return ActionNone
}
