package input

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/showroom/internal/config"
)

// Keymap resolves SDL scancodes to logical directions and the interact
// action, built once from the bindings config.
type Keymap struct {
	directions map[sdl.Scancode]Direction
	interact   map[sdl.Scancode]bool
}

// NewKeymap resolves binding names (SDL key names, e.g. "w", "up",
// "return") to scancodes. Unknown names are an error so typos in the
// config surface at startup rather than as dead keys.
func NewKeymap(b config.BindingsConfig) (*Keymap, error) {
	km := &Keymap{
		directions: make(map[sdl.Scancode]Direction),
		interact:   make(map[sdl.Scancode]bool),
	}

	add := func(names []string, d Direction) error {
		for _, name := range names {
			sc := sdl.GetScancodeFromName(strings.ToUpper(name[:1]) + name[1:])
			if sc == sdl.SCANCODE_UNKNOWN {
				sc = sdl.GetScancodeFromName(name)
			}
			if sc == sdl.SCANCODE_UNKNOWN {
				return fmt.Errorf("unknown key name %q", name)
			}
			km.directions[sc] = d
		}
		return nil
	}

	if err := add(b.Forward, DirForward); err != nil {
		return nil, err
	}
	if err := add(b.Backward, DirBackward); err != nil {
		return nil, err
	}
	if err := add(b.Left, DirLeft); err != nil {
		return nil, err
	}
	if err := add(b.Right, DirRight); err != nil {
		return nil, err
	}

	for _, name := range b.Interact {
		sc := sdl.GetScancodeFromName(strings.ToUpper(name[:1]) + name[1:])
		if sc == sdl.SCANCODE_UNKNOWN {
			sc = sdl.GetScancodeFromName(name)
		}
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("unknown key name %q", name)
		}
		km.interact[sc] = true
	}

	return km, nil
}

// Direction returns the logical direction bound to a scancode.
func (k *Keymap) Direction(sc sdl.Scancode) (Direction, bool) {
	d, ok := k.directions[sc]
	return d, ok
}

// IsInteract reports whether a scancode is bound to the interact action.
func (k *Keymap) IsInteract(sc sdl.Scancode) bool {
	return k.interact[sc]
}
