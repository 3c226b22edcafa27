// Package cache contém o cache de snapshot do painel
package cache

import (
	"sync"
	"time"
)

// DefaultTTL é o tempo de vida padrão de um snapshot
const DefaultTTL = 300 * time.Second

// Clock retorna o instante atual; substituível em testes
type Clock func() time.Time

// SingleSlot guarda um único valor com expiração fixa após cada Put.
// Não há invalidação ligada aos dados de origem, apenas ao tempo.
type SingleSlot[T any] struct {
	mu        sync.RWMutex
	ttl       time.Duration
	clock     Clock
	value     T
	expiresAt time.Time
	filled    bool
}

type Option[T any] func(*SingleSlot[T])

// WithClock injeta o relógio usado para calcular a expiração
func WithClock[T any](clock Clock) Option[T] {
	return func(c *SingleSlot[T]) {
		c.clock = clock
	}
}

func NewSingleSlot[T any](ttl time.Duration, opts ...Option[T]) *SingleSlot[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &SingleSlot[T]{
		ttl:   ttl,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get retorna o valor guardado se ainda não expirou
func (c *SingleSlot[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if !c.filled || !c.clock().Before(c.expiresAt) {
		return zero, false
	}

	return c.value, true
}

// Put guarda o valor com expiração em agora + TTL
func (c *SingleSlot[T]) Put(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.expiresAt = c.clock().Add(c.ttl)
	c.filled = true
}

// Invalidate descarta o valor guardado
func (c *SingleSlot[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.expiresAt = time.Time{}
	c.filled = false
}

// ExpiresAt retorna a expiração do valor atual (zero se vazio)
func (c *SingleSlot[T]) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.expiresAt
}

// TTL retorna o tempo de vida configurado
func (c *SingleSlot[T]) TTL() time.Duration {
	return c.ttl
}
