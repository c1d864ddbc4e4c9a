package storage

import "sync"

// Op is the kind of change a feed notification describes.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Change is one row-level change notification.
type Change struct {
	Table string
	Op    Op
	// ID is the affected row ID. Zero for bulk operations that touch
	// more than one row, such as ClearScores.
	ID int64
}

// Feed broadcasts row changes to per-table subscribers. Delivery is
// non-blocking: a subscriber that stops draining its channel misses
// changes instead of stalling writers.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Change
}

// NewFeed creates an empty change feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[string]map[int]chan Change)}
}

// Subscribe registers interest in changes to a table. The returned
// cancel function closes the channel and must be called exactly once.
func (f *Feed) Subscribe(table string) (<-chan Change, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Change, 16)
	id := f.nextID
	f.nextID++

	if f.subs[table] == nil {
		f.subs[table] = make(map[int]chan Change)
	}
	f.subs[table][id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[table][id]; ok {
			delete(f.subs[table], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers a change to every subscriber of its table.
func (f *Feed) Publish(c Change) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs[c.Table] {
		select {
		case ch <- c:
		default:
			// Subscriber is not draining; drop rather than block
		}
	}
}
