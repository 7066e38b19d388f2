package viewer

// Location models the page URL fragment and its session history.
// Assigning a different fragment pushes a history entry and queues a
// fragment-change event. Replacing never does either. Queued events are
// delivered by Dispatch, one at a time, in arrival order.
type Location struct {
	entries     []string
	index       int
	pending     int
	subscribers map[int]func(fragment string)
	nextID      int
}

// NewLocation starts a history with a single entry for fragment
func NewLocation(fragment string) *Location {
	return &Location{
		entries:     []string{NormalizeFragment(fragment)},
		subscribers: make(map[int]func(string)),
	}
}

// Fragment is the current fragment without the leading '#'
func (l *Location) Fragment() string {
	return l.entries[l.index]
}

// HistoryLength is the number of entries in the session history
func (l *Location) HistoryLength() int {
	return len(l.entries)
}

// Assign sets the fragment like an address-bar edit or a link click.
// Setting the current value is a no-op: no entry, no event.
func (l *Location) Assign(fragment string) {
	fragment = NormalizeFragment(fragment)
	if fragment == l.Fragment() {
		return
	}
	l.entries = append(l.entries[:l.index+1], fragment)
	l.index++
	l.pending++
}

// Replace rewrites the current entry without adding history or raising an event
func (l *Location) Replace(fragment string) {
	l.entries[l.index] = NormalizeFragment(fragment)
}

// Back moves one entry back, raising an event when the fragment differs
func (l *Location) Back() bool {
	if l.index == 0 {
		return false
	}
	return l.traverse(l.index - 1)
}

// Forward moves one entry forward, raising an event when the fragment differs
func (l *Location) Forward() bool {
	if l.index >= len(l.entries)-1 {
		return false
	}
	return l.traverse(l.index + 1)
}

func (l *Location) traverse(to int) bool {
	before := l.Fragment()
	l.index = to
	if l.Fragment() != before {
		l.pending++
	}
	return true
}

// Subscribe registers a fragment-change handler and returns its cancel func
func (l *Location) Subscribe(fn func(fragment string)) func() {
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	return func() { delete(l.subscribers, id) }
}

// Pending is the number of queued fragment-change events
func (l *Location) Pending() int {
	return l.pending
}

// Dispatch delivers queued events until the queue is empty, including events
// queued by the handlers themselves. Each handler sees the fragment current
// at delivery time. Events raised with no subscriber are dropped.
func (l *Location) Dispatch() int {
	delivered := 0
	for l.pending > 0 {
		l.pending--
		if len(l.subscribers) == 0 {
			continue
		}
		for _, id := range l.subscriberIDs() {
			if fn, ok := l.subscribers[id]; ok {
				fn(l.Fragment())
			}
		}
		delivered++
	}
	return delivered
}

func (l *Location) subscriberIDs() []int {
	ids := make([]int, 0, len(l.subscribers))
	for id := 0; id < l.nextID; id++ {
		if _, ok := l.subscribers[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
