// Package view holds the page-level state machinery shared by every
// control-panel page: a synchronized collection snapshot, the alert
// queue for surfaced errors, and the client-side search filter. Pages
// own their collections exclusively; navigating away discards the
// snapshot and re-entering loads from scratch.
package view

// Phase tracks where a collection is in its load cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Collection is a local snapshot of one backend resource. The server
// stays the authority: loads replace the snapshot wholesale and
// mutations land only after the server confirms them, so a failed call
// never leaves a phantom entry behind. Methods are meant to be driven
// from a single goroutine, mirroring the event-loop model of the
// panel's pages.
type Collection[T any] struct {
	phase      Phase
	items      []T
	submitting bool
}

// Phase reports the current load phase.
func (c *Collection[T]) Phase() Phase {
	return c.phase
}

// Items returns the current snapshot. Callers must not mutate it.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len reports the snapshot size.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// BeginLoad marks the collection in flight.
func (c *Collection[T]) BeginLoad() {
	c.phase = PhaseLoading
}

// FinishLoad applies a completed fetch. On success the snapshot is
// replaced entirely; on failure it is emptied and the phase set to
// failed. There is no merge and no silent retry.
func (c *Collection[T]) FinishLoad(items []T, err error) {
	if err != nil {
		c.items = nil
		c.phase = PhaseFailed
		return
	}
	c.items = items
	c.phase = PhaseReady
}

// BeginSubmit gates re-entrant submissions. It returns false while a
// previous submit on this collection is still in flight.
func (c *Collection[T]) BeginSubmit() bool {
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// EndSubmit re-enables submission regardless of outcome.
func (c *Collection[T]) EndSubmit() {
	c.submitting = false
}

// Submitting reports whether a submit is in flight.
func (c *Collection[T]) Submitting() bool {
	return c.submitting
}

// Append inserts a confirmed entity at the end of the snapshot.
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// Prepend inserts a confirmed entity at the front, newest-first.
func (c *Collection[T]) Prepend(item T) {
	c.items = append([]T{item}, c.items...)
}

// Remove deletes the first item matching the predicate and reports
// whether anything was removed.
func (c *Collection[T]) Remove(match func(T) bool) bool {
	for i, item := range c.items {
		if match(item) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the first item matching the predicate for the given
// entity, in place, and reports whether a match was found.
func (c *Collection[T]) Replace(match func(T) bool, item T) bool {
	for i, existing := range c.items {
		if match(existing) {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Upsert replaces a matching item in place or appends when none
// matches. Length grows only when the key was previously absent.
func (c *Collection[T]) Upsert(match func(T) bool, item T) {
	if !c.Replace(match, item) {
		c.Append(item)
	}
}

// Clear empties the snapshot, keeping the collection ready.
func (c *Collection[T]) Clear() {
	c.items = nil
	c.phase = PhaseReady
}

// Find returns a pointer into the snapshot for the first match, or nil.
func (c *Collection[T]) Find(match func(T) bool) *T {
	for i := range c.items {
		if match(c.items[i]) {
			return &c.items[i]
		}
	}
	return nil
}
