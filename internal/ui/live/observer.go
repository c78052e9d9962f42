package live

import (
	"sync"

	"quizapp/internal/quiz"
)

// Controller forwards session changes into the Bubble Tea event loop.
type Controller struct {
	changes     chan quiz.Change
	unsubscribe func()
	closeOnce   sync.Once
}

// Attach subscribes a controller to session changes.
func Attach(session *quiz.Session) *Controller {
	controller := &Controller{changes: make(chan quiz.Change, 64)}
	controller.unsubscribe = session.Subscribe(controller)
	return controller
}

// Changes returns the stream of forwarded changes.
func (c *Controller) Changes() <-chan quiz.Change {
	if c == nil {
		return nil
	}
	return c.changes
}

// OnChange enqueues a change without blocking the session.
func (c *Controller) OnChange(change quiz.Change) {
	if c == nil {
		return
	}
	select {
	case c.changes <- change:
	default:
	}
}

// Close detaches from the session and ends the change stream.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		c.unsubscribe()
		close(c.changes)
	})
}
