// Package cache implémente un cache LRU borné, partageable entre requêtes
// concurrentes. Les valeurs mises en cache sont immuables par convention :
// en cas de course sur une même clé, le dernier écrivain gagne, le calcul
// dupliqué est acceptable.
package cache

import (
	"container/list"
	"sync"
)

// LRU est un cache clé → valeur à capacité fixe avec éviction du moins
// récemment utilisé. Sûr pour un usage concurrent (mutex interne).
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = plus récemment utilisé
	items    map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU construit un cache de capacité cap. Une capacité <= 0 est ramenée à 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get retourne la valeur associée à key et la marque comme récemment utilisée.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Put insère ou remplace la valeur pour key. Si la capacité est dépassée,
// l'entrée la plus anciennement utilisée est évincée.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		// clé déjà présente : remplacer et rafraîchir
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[K, V]).key)
		}
	}
}

// Len retourne le nombre d'entrées présentes.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
