package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as seen by input processors.
// Runes are identified by their character alone, special keys by their tcell
// key (e.g. shift-tab is tcell.KeyBacktab).
type Key struct {
	Key tcell.Key
	Ch  rune
}

// KeyFromEvent returns the Key for a tcell key event.
func KeyFromEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}
