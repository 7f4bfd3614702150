// Package editqueue serializes edits per document. Jobs submitted under the same key
// run one at a time in submission order, so two overlapping read-modify-write
// cycles on one document can never interleave. Different keys run independently.
package editqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrClosed is returned for jobs submitted after Close.
var ErrClosed = errors.New("edit queue is closed")

// Job is a single edit step.
type Job func(ctx context.Context) error

type job struct {
	fn   Job
	done chan error
}

// Manager owns one worker per key.
type Manager struct {
	mu      sync.Mutex
	workers map[string]*worker
	closed  bool
	stop    chan struct{}
	wg      sync.WaitGroup
	ctx     context.Context
}

// NewManager creates an empty manager. ctx is passed to every job.
func NewManager(ctx context.Context) *Manager {
	return &Manager{
		workers: make(map[string]*worker),
		stop:    make(chan struct{}),
		ctx:     ctx,
	}
}

// Enqueue schedules fn after every job previously queued for key. The returned
// channel receives the job's result exactly once. A failing job does not stop the
// queue.
func (m *Manager) Enqueue(key string, fn Job) <-chan error {
	done := make(chan error, 1)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		done <- ErrClosed
		return done
	}

	w, ok := m.workers[key]
	if !ok {
		w = &worker{key: key, wake: make(chan struct{}, 1)}
		m.workers[key] = w
		m.wg.Add(1)
		go m.run(w)
	}
	w.push(job{fn: fn, done: done})
	return done
}

// Do enqueues fn and waits for its result.
func (m *Manager) Do(key string, fn Job) error {
	return <-m.Enqueue(key, fn)
}

// Close stops accepting jobs, waits for every queued job to finish and stops the
// workers. It is safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.stop)
	m.mu.Unlock()

	m.wg.Wait()
}

// Keys returns the number of keys that have a worker.
func (m *Manager) Keys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

func (m *Manager) run(w *worker) {
	defer m.wg.Done()
	for {
		select {
		case <-w.wake:
			w.drain(m.ctx)
		case <-m.stop:
			// Jobs accepted before Close still run.
			w.drain(m.ctx)
			return
		}
	}
}

// worker holds the pending jobs of one key.
type worker struct {
	key     string
	mu      sync.Mutex
	pending []job
	wake    chan struct{}
}

func (w *worker) push(j job) {
	w.mu.Lock()
	w.pending = append(w.pending, j)
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *worker) pop() (job, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return job{}, false
	}
	j := w.pending[0]
	w.pending = w.pending[1:]
	return j, true
}

func (w *worker) drain(ctx context.Context) {
	for {
		j, ok := w.pop()
		if !ok {
			return
		}
		err := runJob(ctx, j.fn)
		if err != nil {
			slog.Error("Edit failed", "document", w.key, "error", err)
		}
		j.done <- err
	}
}

func runJob(ctx context.Context, fn Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("edit panicked: %v", r)
		}
	}()
	return fn(ctx)
}
