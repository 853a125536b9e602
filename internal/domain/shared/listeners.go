package shared

// ListenerID identifies a registered listener for later removal
type ListenerID int

type listenerEntry[T any] struct {
	id ListenerID
	fn func(T)
}

// Listeners is an ordered list of observers notified synchronously in
// registration order.
type Listeners[T any] struct {
	nextID  ListenerID
	entries []listenerEntry[T]
}

// Add registers fn and returns its id
func (l *Listeners[T]) Add(fn func(T)) ListenerID {
	l.nextID++
	l.entries = append(l.entries, listenerEntry[T]{id: l.nextID, fn: fn})
	return l.nextID
}

// Remove unregisters the listener with the given id
func (l *Listeners[T]) Remove(id ListenerID) bool {
	for i, entry := range l.entries {
		if entry.id == id {
			// Copy so an in-progress Notify keeps iterating its own snapshot
			next := make([]listenerEntry[T], 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			next = append(next, l.entries[i+1:]...)
			l.entries = next
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners
func (l *Listeners[T]) Len() int {
	return len(l.entries)
}

// Notify calls every listener with event.
// Listeners added during a notification are first called on the next one;
// listeners removed during a notification are skipped.
func (l *Listeners[T]) Notify(event T) {
	snapshot := l.entries
	for _, entry := range snapshot {
		if !l.contains(entry.id) {
			continue
		}
		entry.fn(event)
	}
}

func (l *Listeners[T]) contains(id ListenerID) bool {
	for _, entry := range l.entries {
		if entry.id == id {
			return true
		}
	}
	return false
}
