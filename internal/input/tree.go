package input

import (
	"fmt"

	"github.com/ja-he/memeplan/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	Root    *Node
	Current *Node

	pending []Key
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. it either completed a
// sequence (and the sequence's action was performed) or continued one.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Reset()
		return false
	case next.IsLeaf():
		t.Reset()
		next.Action.Do()
		return true
	default:
		t.Current = next
		t.pending = append(t.pending, k)
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence, in
// which case it should take priority over other processors.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// Reset abandons a partially entered sequence.
func (t *Tree) Reset() {
	t.Current = t.Root
	t.pending = nil
}

// Pending returns the keys of a partially entered sequence in keyspec form
// (empty if there is none).
func (t *Tree) Pending() string {
	return KeysToConfigIdentifierString(t.pending)
}

// ConstructInputTree constructs a Tree for the given mappings of keyspecs to
// actions.
// Returns an error for invalid keyspecs and for keyspecs of which one is a
// prefix of another (e.g. "d" and "dd"), as the longer one could never be
// entered.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec '%s' (%w)", mapping, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec for action '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			last := i == len(sequence)-1
			next, exists := current.Children[key]
			switch {
			case exists && (last || next.IsLeaf()):
				return nil, fmt.Errorf("keyspec '%s' conflicts with another binding", mapping)
			case exists:
			case last:
				next = NewLeaf(a)
				current.Children[key] = next
			default:
				next = NewNode()
				current.Children[key] = next
			}
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
