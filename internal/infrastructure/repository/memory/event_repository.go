// Package memory provides the in-memory repositories backing a session.
// The event pool is seeded at startup; there is no server-side mutation path.
package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository struct {
	mu     sync.RWMutex
	order  []string
	events map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	order := make([]string, 0, len(events))
	byID := make(map[string]event.Event, len(events))
	for _, item := range events {
		if _, ok := byID[item.ID]; ok {
			continue
		}
		order = append(order, item.ID)
		byID[item.ID] = item
	}

	return &EventRepository{order: order, events: byID}
}

// List returns every event in seed order.
func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}
	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.events[id]
	if !ok {
		return event.Event{}, errors.Wrapf(ErrEventNotFound, "id %s", id)
	}
	return item, nil
}
