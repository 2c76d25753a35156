// Package events is an in-process change notification registry. Services
// publish a Change after every successful write and subscribers keyed by
// entity react to it: report caches are dropped, cached budget and card
// totals are refreshed and changes are forwarded to the message broker.
package events

import (
	"context"
	"sync"
	"time"

	"carteira/internal/logger"
)

// Entity names the kind of record that changed.
type Entity string

const (
	EntityAccount     Entity = "account"
	EntityCard        Entity = "card"
	EntityCategory    Entity = "category"
	EntityTag         Entity = "tag"
	EntityTransaction Entity = "transaction"
	EntityBudget      Entity = "budget"
	EntityGoal        Entity = "goal"
	EntityDebt        Entity = "debt"
	EntityReceivable  Entity = "receivable"
)

// AllEntities lists every Entity, for handlers that must run ahead of the
// catch-all subscribers.
var AllEntities = []Entity{
	EntityAccount, EntityCard, EntityCategory, EntityTag, EntityTransaction,
	EntityBudget, EntityGoal, EntityDebt, EntityReceivable,
}

// Action is what happened to the entity.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change describes one committed write.
type Change struct {
	UserID string    `json:"user_id"`
	Entity Entity    `json:"entity"`
	Action Action    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// Handler reacts to a Change. A returned error is logged and does not stop
// delivery to the remaining handlers.
type Handler func(ctx context.Context, c Change) error

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, c Change)
}

// Nop discards every change.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Change) {}

// Bus delivers changes synchronously, in subscription order, to the
// handlers registered for the change's entity followed by the catch-all
// handlers.
type Bus struct {
	mu       sync.RWMutex
	byEntity map[Entity][]Handler
	all      []Handler
	now      func() time.Time
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		byEntity: make(map[Entity][]Handler),
		now:      time.Now,
	}
}

// Subscribe registers h for changes to the given entities.
func (b *Bus) Subscribe(h Handler, entities ...Entity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range entities {
		b.byEntity[e] = append(b.byEntity[e], h)
	}
}

// SubscribeAll registers h for every change.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish delivers c. At is stamped when left zero.
func (b *Bus) Publish(ctx context.Context, c Change) {
	if c.At.IsZero() {
		c.At = b.now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.byEntity[c.Entity])+len(b.all))
	handlers = append(handlers, b.byEntity[c.Entity]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, c); err != nil {
			logger.Named("events").Errorw("change handler failed",
				"error", err,
				"entity", c.Entity,
				"action", c.Action,
				"id", c.ID,
				"user_id", c.UserID,
			)
		}
	}
}
