package input

import (
	"github.com/ja-he/memeplan/internal/control/action"
)

// Node is a node in a Tree.
// It has either child nodes or an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key, or nil if there is none.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// IsLeaf returns whether the node holds an action.
func (n *Node) IsLeaf() bool {
	return n.Action != nil
}

// NewNode returns a pointer to a new empty intermediate Node.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a pointer to a new leaf Node holding the given action.
func NewLeaf(action action.Action) *Node {
	return &Node{
		Action: action,
	}
}
