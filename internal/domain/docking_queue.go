package domain

import "fmt"

// DockingQueue is a per-port FIFO of ship identifiers. It is the only
// mutable per-port state in the engine; the path search never touches
// it. Management (who gets enqueued, when) is a boundary concern left
// to callers — this type only guarantees FIFO order.
type DockingQueue struct {
	ships []string
}

// NewDockingQueue returns an empty queue.
func NewDockingQueue() *DockingQueue {
	return &DockingQueue{}
}

// Enqueue appends a ship to the back of the queue.
func (q *DockingQueue) Enqueue(ship string) {
	q.ships = append(q.ships, ship)
}

// DequeueFront removes and returns the ship at the front of the queue.
func (q *DockingQueue) DequeueFront() (string, error) {
	if len(q.ships) == 0 {
		return "", fmt.Errorf("docking queue: dequeue on empty queue")
	}
	ship := q.ships[0]
	q.ships = q.ships[1:]
	return ship, nil
}

// PeekFront returns the ship at the front of the queue without removing it.
func (q *DockingQueue) PeekFront() (string, error) {
	if len(q.ships) == 0 {
		return "", fmt.Errorf("docking queue: peek on empty queue")
	}
	return q.ships[0], nil
}

// Size reports the number of ships currently queued.
func (q *DockingQueue) Size() int {
	return len(q.ships)
}

// Snapshot returns a non-destructive, order-preserving copy of the
// currently queued ships.
func (q *DockingQueue) Snapshot() []string {
	out := make([]string, len(q.ships))
	copy(out, q.ships)
	return out
}
