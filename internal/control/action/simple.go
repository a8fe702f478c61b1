package action

// Simple implements the Action interface by calling a func() on Do.
// It is what most key bindings that don't touch the editor state use, e.g.
// toggling an overlay.
type Simple struct {
	action  func()
	explain func() string
}

// Do calls the action function.
func (a *Simple) Do() {
	a.action()
}

// Explain returns the current explanation.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a new simple action. The explainer is called every time
// the action is explained, so it may reflect state (e.g. "show help" vs
// "hide help").
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}
