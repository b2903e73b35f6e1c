package cache

import (
	"context"
	"log"
	"sync"

	"github.com/YaminiCharan14/linen/internal/metrics"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/storage"
)

type OrderSource interface {
	ActiveOrders(ctx context.Context) ([]order.Order, error)
}

// OrderCache keeps the not-yet-completed orders in memory so list and
// detail views don't hit Postgres on every poll.
type OrderCache struct {
	mu     sync.RWMutex
	cache  map[string]*order.Order
	source OrderSource
}

func NewOrderCache(source OrderSource) *OrderCache {
	return &OrderCache{
		cache:  make(map[string]*order.Order),
		source: source,
	}
}

func (c *OrderCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading initial data into order cache...")
	orders, err := c.source.ActiveOrders(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range orders {
		orderCopy := orders[i]
		c.cache[orderCopy.ID] = &orderCopy
	}
	metrics.OrderCacheItems.Set(float64(len(c.cache)))
	log.Printf("Successfully loaded %d active orders into cache.", len(c.cache))
	return nil
}

func (c *OrderCache) Get(orderID string) (*order.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, found := c.cache[orderID]
	if !found {
		return nil, false
	}
	orderCopy := cached.Clone()
	return &orderCopy, true
}

// Set stores an active order; a completed order is evicted instead.
func (c *OrderCache) Set(o *order.Order) {
	if o.Status == storage.StatusCompleted {
		c.Delete(o.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	orderCopy := o.Clone()
	c.cache[o.ID] = &orderCopy
	metrics.OrderCacheItems.Set(float64(len(c.cache)))
}

func (c *OrderCache) Delete(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[orderID]; found {
		delete(c.cache, orderID)
		metrics.OrderCacheItems.Set(float64(len(c.cache)))
	}
}
