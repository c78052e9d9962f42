package quiz

// Change describes one applied intent. Before and After are independent
// snapshots; observers may keep them.
type Change struct {
	SessionID string
	Intent    Intent
	Before    State
	After     State
}

// Observer receives session changes after they are applied.
type Observer interface {
	OnChange(change Change)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(change Change)

// OnChange calls f(change).
func (f ObserverFunc) OnChange(change Change) {
	f(change)
}

type subscription struct {
	id       int
	observer Observer
}
