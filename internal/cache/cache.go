// Package cache keeps short-lived copies of backend reads keyed by resource
// identity. Entries are dropped by the mutation that owns the resource.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	ProductTTL       = time.Minute
	CartTTL          = time.Minute
	PaymentStatusTTL = 5 * time.Minute
	ReservationTTL   = 5 * time.Minute
	TaxonomyTTL      = 30 * time.Minute
	FormTTL          = 5 * time.Minute
)

type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

func New[K comparable, V any](size int, ttl time.Duration) *Cache[K, V] {
	if size <= 0 {
		size = 128
	}
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](size, nil, ttl)}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// Invalidate drops key so the next read goes to the backend.
func (c *Cache[K, V]) Invalidate(key K) {
	c.lru.Remove(key)
}

func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// GetOrLoad returns the cached value for key or calls load and caches its
// result. Errors are never cached.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, bool, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, true, nil
	}

	v, err := load()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.lru.Add(key, v)
	return v, false, nil
}
