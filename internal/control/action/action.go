package action

// An Action is something that is done in reaction to user input, and can
// explain itself for the help pane.
//
// Undoing is not the action's concern; the editing session keeps the history.
type Action interface {
	Do()
	Explain() string
}
