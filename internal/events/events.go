package events

// Emitter dispatches values of type T to registered listeners, synchronously and in registration order.
// Not safe for concurrent use; everything runs on the render thread.
type Emitter[T any] struct {
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// On registers fn and returns a release func that removes it. Calling release more than once is a no-op.
func (e *Emitter[T]) On(fn func(T)) (release func()) {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	released := false
	return func() {
		if released {
			return
		}
		released = true
		e.remove(id)
	}
}

func (e *Emitter[T]) remove(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Emit calls every listener with v. Listeners removed during dispatch still see this value.
func (e *Emitter[T]) Emit(v T) {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	return len(e.listeners)
}
