package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/memeplan/internal/control/action"
)

// Actionspec is the name of an action as written in the config, e.g. "undo".
type Actionspec string

// Bindings map keyspecs to the names of the actions they trigger.
type Bindings map[Keyspec]Actionspec

// BindingsFromConfig converts the key section of a config to Bindings.
func BindingsFromConfig(keys map[string]string) Bindings {
	result := make(Bindings, len(keys))
	for spec, name := range keys {
		result[Keyspec(spec)] = Actionspec(name)
	}
	return result
}

// Resolve looks up the action for each binding in the given registry.
// All unknown action names are reported in one error.
func (b Bindings) Resolve(registry map[Actionspec]action.Action) (map[Keyspec]action.Action, error) {
	result := make(map[Keyspec]action.Action, len(b))
	unknown := []string{}
	for spec, name := range b {
		a, ok := registry[name]
		if !ok {
			unknown = append(unknown, fmt.Sprintf("'%s' (bound to '%s')", name, spec))
			continue
		}
		result[spec] = a
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown actions %s", strings.Join(unknown, ", "))
	}
	return result, nil
}

// ConstructInputTreeFromBindings resolves the bindings against the registry
// and constructs the Tree for them.
func ConstructInputTreeFromBindings(b Bindings, registry map[Actionspec]action.Action) (*Tree, error) {
	spec, err := b.Resolve(registry)
	if err != nil {
		return nil, err
	}
	return ConstructInputTree(spec)
}
