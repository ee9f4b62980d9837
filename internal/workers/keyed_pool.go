// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
)

var (
	// ErrPoolClosed is returned by Submit after the pool has stopped.
	ErrPoolClosed = errors.New("worker pool is closed")

	// ErrQueueFull is returned by Submit when the key already has the
	// maximum number of jobs waiting.
	ErrQueueFull = errors.New("worker queue is full")
)

const defaultQueueSize = 16

// KeyedPool runs the jobs of one key strictly in submission order and the
// jobs of different keys independently. A key gets its own goroutine while
// it has work and releases it once its queue is empty.
type KeyedPool struct {
	queue int

	mu     sync.Mutex
	keys   map[int64]*keyQueue
	closed bool

	wg     sync.WaitGroup
	logger *logger.Logger
}

type keyQueue struct {
	jobs []Job
}

// NewKeyedPool creates a pool that lets up to queue jobs of one key wait
// behind the running one. Non-positive values use the default.
func NewKeyedPool(queue int, log *logger.Logger) *KeyedPool {
	if queue < 1 {
		queue = defaultQueueSize
	}

	return &KeyedPool{
		queue:  queue,
		keys:   make(map[int64]*keyQueue),
		logger: log,
	}
}

// Submit queues job behind the pending jobs of key and returns at once.
// It never waits for room: a full queue yields [ErrQueueFull].
func (p *KeyedPool) Submit(key int64, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}

	q, active := p.keys[key]
	if !active {
		q = &keyQueue{}
		p.keys[key] = q
	}
	if len(q.jobs) >= p.queue {
		return ErrQueueFull
	}
	q.jobs = append(q.jobs, job)

	if !active {
		p.wg.Add(1)
		go p.drain(key, q)
	}
	return nil
}

// drain runs the jobs of key until its queue is empty, then forgets the key.
func (p *KeyedPool) drain(key int64, q *keyQueue) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		if len(q.jobs) == 0 {
			delete(p.keys, key)
			p.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs[0] = nil
		q.jobs = q.jobs[1:]
		p.mu.Unlock()

		p.runJob(key, job)
	}
}

// Run blocks until ctx is cancelled, then stops accepting jobs and waits
// for everything already queued to finish.
func (p *KeyedPool) Run(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	<-ctx.Done()

	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info().Str("func", "*KeyedPool.Run").Msg("worker pool drained")
}

func (p *KeyedPool) runJob(key int64, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "*KeyedPool.runJob").
				Int64("key", key).
				Interface("panic", r).
				Msg("job panicked")
		}
	}()
	job()
}

func (p *KeyedPool) activeKeys() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}
