package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence as written in the config, e.g. "<space>qw" meaning
// the SPACE key, then the Q key, then the W key.
type Keyspec string

type specialKey struct {
	identifier string
	key        Key
}

// specialKeys lists the keys that have to be written as "<identifier>" in a
// keyspec. Where tcell gives two identifiers the same key (e.g. "<tab>" and
// "<c-i>"), the first one listed is used to describe the key.
var specialKeys = func() []specialKey {
	result := []specialKey{
		{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
		{"lt", Key{Key: tcell.KeyRune, Ch: '<'}},
		{"gt", Key{Key: tcell.KeyRune, Ch: '>'}},
		{"cr", Key{Key: tcell.KeyEnter}},
		{"esc", Key{Key: tcell.KeyESC}},
		{"tab", Key{Key: tcell.KeyTab}},
		{"s-tab", Key{Key: tcell.KeyBacktab}},
		{"del", Key{Key: tcell.KeyDelete}},
		{"bs", Key{Key: tcell.KeyBackspace2}},
		{"c-bs", Key{Key: tcell.KeyBackspace}},
		{"left", Key{Key: tcell.KeyLeft}},
		{"right", Key{Key: tcell.KeyRight}},
		{"up", Key{Key: tcell.KeyUp}},
		{"down", Key{Key: tcell.KeyDown}},
		{"home", Key{Key: tcell.KeyHome}},
		{"end", Key{Key: tcell.KeyEnd}},
		{"pgup", Key{Key: tcell.KeyPgUp}},
		{"pgdn", Key{Key: tcell.KeyPgDn}},
		{"c-space", Key{Key: tcell.KeyCtrlSpace}},
	}
	for i := 0; i < 26; i++ {
		result = append(result, specialKey{
			identifier: fmt.Sprintf("c-%c", 'a'+i),
			key:        Key{Key: tcell.KeyCtrlA + tcell.Key(i)},
		})
	}
	return result
}()

var keysByIdentifier, identifiersByKey = func() (map[string]Key, map[Key]string) {
	byIdentifier := make(map[string]Key, len(specialKeys))
	byKey := make(map[Key]string, len(specialKeys))
	for _, s := range specialKeys {
		byIdentifier[s.identifier] = s.key
		if _, ok := byKey[s.key]; !ok {
			byKey[s.key] = s.identifier
		}
	}
	return byIdentifier, byKey
}()

// ConfigKeyspecToKeys converts a keyspec to the appropriate sequence of Keys
// (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0, len(spec))

	var special *strings.Builder
	for pos, r := range string(spec) {
		switch {

		case r == '<':
			if special != nil {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			special = &strings.Builder{}

		case r == '>':
			if special == nil {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			key, err := KeyIdentifierToKey(special.String())
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%w)", special.String(), err)
			}
			result = append(result, key)
			special = nil

		case special != nil:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special.WriteRune(r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})
		}
	}
	if special != nil {
		return nil, fmt.Errorf("special context ('<') not closed at end of keyspec '%s'", spec)
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier (without angle
// brackets) to the appropriate key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := keysByIdentifier[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its keyspec form.
// Keys that can not be written in a keyspec are returned in their debug form.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := identifiersByKey[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}

// KeysToConfigIdentifierString converts a key sequence to its keyspec form.
func KeysToConfigIdentifierString(keys []Key) string {
	b := strings.Builder{}
	for _, k := range keys {
		b.WriteString(ToConfigIdentifierString(k))
	}
	return b.String()
}
