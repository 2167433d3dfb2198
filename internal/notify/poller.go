// Package notify surfaces items nearing expiration. Each item is surfaced
// at most once: reading the expiring set marks every returned item as
// notified, so repeated polls never repeat an alert.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/expiration"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/model"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/websocket"
)

// DefaultWindowDays is the expiring-soon window used when the caller does
// not supply one.
const DefaultWindowDays = 3

// Poller periodically checks the inventory for expiring items.
type Poller struct {
	mu         sync.RWMutex
	items      store.FoodItemStore
	hub        *websocket.Hub
	interval   time.Duration
	windowDays int
	logger     *slog.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewPoller creates a poller over the given item store. The hub may be nil
// when no live clients need alerts (tests, one-shot callers).
func NewPoller(items store.FoodItemStore, hub *websocket.Hub, interval time.Duration, windowDays int, logger *slog.Logger) *Poller {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Poller{
		items:      items,
		hub:        hub,
		interval:   interval,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Start begins the poller loop.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	p.mu.Unlock()

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}()
}

// Stop gracefully stops the poller.
func (p *Poller) Stop() {
	p.mu.RLock()
	cancel := p.cancel
	done := p.done
	p.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (p *Poller) tick() {
	surfaced, err := p.PollExpiring(p.windowDays)
	if err != nil {
		p.logger.Error("poll expiring", "error", err)
		return
	}

	today := time.Now().UTC()
	for _, item := range surfaced {
		info := expiration.Classify(item.ExpirationDate, today)
		p.logger.Info("item expiring",
			"id", item.ID, "name", item.Name, "status", info.Status, "text", info.Text)
		if p.hub != nil {
			p.hub.Broadcast(websocket.NewMessage(websocket.EntityExpiring, "alert", item.ID, map[string]any{
				"name":      item.Name,
				"status":    string(info.Status),
				"text":      info.Text,
				"days_left": info.DaysLeft,
			}))
		}
	}
}

// PollExpiring returns the items expiring within windowDays that have not
// been surfaced before, marking each as notified. The returned snapshot
// still shows notified=false, the state the caller is alerting on. Safe
// under accidental overlap: MarkNotified is idempotent, so two concurrent
// polls at worst return overlapping sets.
func (p *Poller) PollExpiring(windowDays int) ([]model.FoodItem, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	expiring, err := p.items.ListExpiringWithin(windowDays)
	if err != nil {
		return nil, err
	}

	var surfaced []model.FoodItem
	for _, item := range expiring {
		if item.Notified {
			continue
		}
		if err := p.items.MarkNotified(item.ID); err != nil {
			return nil, err
		}
		surfaced = append(surfaced, item)
	}
	return surfaced, nil
}
