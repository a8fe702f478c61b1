package input

// Help maps keyspecs to explanations of what they do.
type Help = map[string]string

// GetHelp returns the help for all sequences in the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the help for all sequences below the node.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.IsLeaf() {
		result[""] = n.Action.Explain()
		return result
	}

	for k, c := range n.Children {
		for partialCombo, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+partialCombo] = explanation
		}
	}
	return result
}
