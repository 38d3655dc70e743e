package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/metinatakli/novaflix/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const subscriberBuffer = 16

// Broker wraps a CartStore and publishes a CartEvent to the subscribers of a
// session after every mutation that changed its cart. Subscribers that fall
// behind miss events rather than block writers; they should re-read the cart
// on any event they receive.
type Broker struct {
	store  domain.CartStore
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[string]map[string]chan domain.CartEvent
	closed bool

	mutations metric.Int64Counter
}

func NewBroker(store domain.CartStore, logger *slog.Logger) *Broker {
	mutations, err := otel.Meter("github.com/metinatakli/novaflix/internal/cart").Int64Counter(
		"cart.mutations",
		metric.WithDescription("Number of cart changes by type"),
	)
	if err != nil {
		logger.Warn("failed to create cart mutation counter", "error", err)
	}

	return &Broker{
		store:     store,
		logger:    logger,
		subs:      make(map[string]map[string]chan domain.CartEvent),
		mutations: mutations,
	}
}

func (b *Broker) Add(ctx context.Context, sessionID string, movie domain.Movie) (bool, error) {
	added, err := b.store.Add(ctx, sessionID, movie)
	if err != nil || !added {
		return added, err
	}

	b.publish(ctx, domain.CartMovieAdded, sessionID, movie.ID)

	return true, nil
}

func (b *Broker) Remove(ctx context.Context, sessionID, movieID string) (bool, error) {
	removed, err := b.store.Remove(ctx, sessionID, movieID)
	if err != nil || !removed {
		return removed, err
	}

	b.publish(ctx, domain.CartMovieRemoved, sessionID, movieID)

	return true, nil
}

func (b *Broker) List(ctx context.Context, sessionID string) ([]domain.Movie, error) {
	return b.store.List(ctx, sessionID)
}

func (b *Broker) Count(ctx context.Context, sessionID string) (int, error) {
	return b.store.Count(ctx, sessionID)
}

// Subscribe registers for the cart events of a session. The returned cancel
// func unregisters and closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe(sessionID string) (<-chan domain.CartEvent, func()) {
	id := uuid.NewString()
	ch := make(chan domain.CartEvent, subscriberBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[string]chan domain.CartEvent)
	}
	b.subs[sessionID][id] = ch
	b.mu.Unlock()

	var once sync.Once

	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if _, ok := b.subs[sessionID][id]; !ok {
				return
			}

			delete(b.subs[sessionID], id)
			if len(b.subs[sessionID]) == 0 {
				delete(b.subs, sessionID)
			}

			close(ch)
		})
	}

	return ch, cancel
}

// Close ends every subscription. Later subscriptions get a closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true

	for sessionID, subs := range b.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.subs, sessionID)
	}
}

func (b *Broker) publish(ctx context.Context, typ domain.CartEventType, sessionID, movieID string) {
	if b.mutations != nil {
		b.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(typ))))
	}

	count, err := b.store.Count(ctx, sessionID)
	if err != nil {
		b.logger.Error("failed to count cart for event", "error", err)
		count = -1
	}

	event := domain.CartEvent{
		Type:      typ,
		SessionID: sessionID,
		MovieID:   movieID,
		Count:     count,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs[sessionID] {
		select {
		case ch <- event:
		default:
			b.logger.Warn("dropping cart event for slow subscriber", "subscriber_id", id, "type", typ)
		}
	}
}
