package device

import "github.com/vovakirdan/pixel-snake/internal/core"

// DefaultQueueSize bounds the number of buffered key presses.
const DefaultQueueSize = 16

// Queue is a buffered, non-blocking Input fed by a backend's event loop.
// Pushes beyond capacity are dropped, like a full UART receive buffer.
type Queue struct {
	ch chan core.Command
}

// NewQueue creates a queue holding up to size commands.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan core.Command, size)}
}

// Push enqueues a command. It returns false when the buffer is full.
func (q *Queue) Push(c core.Command) bool {
	select {
	case q.ch <- c:
		return true
	default:
		return false
	}
}

// Available implements Input.
func (q *Queue) Available() bool {
	return len(q.ch) > 0
}

// Read implements Input.
func (q *Queue) Read() core.Command {
	select {
	case c := <-q.ch:
		return c
	default:
		return core.CommandNone
	}
}
