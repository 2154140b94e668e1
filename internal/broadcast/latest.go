// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broadcast provides a replay-latest value broadcaster.
//
// [Latest] keeps the most recently published value and fans it out to any
// number of subscribers. A new subscriber immediately receives the current
// value, then every later one. Each subscriber owns a single-slot buffer: if
// it has not consumed the previous value when a new one is published, the
// stale value is replaced, so a slow subscriber only ever skips ahead and
// never observes an older value after a newer one. Publish never blocks on
// subscribers.
package broadcast

import (
	"context"
	"sync"
)

// Latest is a replay-latest broadcaster. The zero value is not usable; call
// [NewLatest].
type Latest[T any] struct {
	mu     sync.Mutex
	value  T
	nextID uint64
	subs   map[uint64]chan T
}

// NewLatest returns a broadcaster whose current value is initial.
func NewLatest[T any](initial T) *Latest[T] {
	return &Latest[T]{
		value: initial,
		subs:  make(map[uint64]chan T),
	}
}

// Publish stores v as the current value and offers it to every subscriber.
func (l *Latest[T]) Publish(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.value = v
	for _, ch := range l.subs {
		offer(ch, v)
	}
}

// Value returns the current value.
func (l *Latest[T]) Value() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value
}

// Subscribers returns the number of active subscriptions.
func (l *Latest[T]) Subscribers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Subscribe returns a channel that yields the current value first and every
// later published value after it. The channel is closed once ctx is done.
func (l *Latest[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	ch <- l.value
	l.mu.Unlock()

	go func() {
		<-ctx.Done()

		l.mu.Lock()
		delete(l.subs, id)
		close(ch)
		l.mu.Unlock()
	}()

	return ch
}

// offer places v into the single-slot channel, dropping an unconsumed older
// value if present. Callers hold l.mu, which makes them the only sender.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- v
}
