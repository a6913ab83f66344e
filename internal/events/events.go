// Package events carries typed notifications between stores. The category
// catalog publishes renames here; the budgeted category store subscribes
// and patches its denormalized name copies.
package events

import "sync"

// CategoryRenamed is published after a category's display name change
// commits. Delivery is at-least-once; handlers must be idempotent.
type CategoryRenamed struct {
	OldName string
	NewName string
}

// Bus is a minimal in-process publish/subscribe hub. Dispatch is
// synchronous and in subscription order, so a rename is fully applied
// before the publishing request returns and later reads observe the new
// name.
type Bus struct {
	mu             sync.RWMutex
	renameHandlers []func(CategoryRenamed)
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeCategoryRenamed registers a handler for category rename events.
func (b *Bus) SubscribeCategoryRenamed(fn func(CategoryRenamed)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renameHandlers = append(b.renameHandlers, fn)
}

// PublishCategoryRenamed delivers the event to every subscribed handler.
func (b *Bus) PublishCategoryRenamed(ev CategoryRenamed) {
	b.mu.RLock()
	handlers := make([]func(CategoryRenamed), len(b.renameHandlers))
	copy(handlers, b.renameHandlers)
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(ev)
	}
}
