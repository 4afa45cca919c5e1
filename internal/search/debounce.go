// Package search debounces interactive medicine search. Only the response to
// the most recent input is ever delivered.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"medisync-api/internal/model"
)

type Func func(ctx context.Context, query string) ([]model.Medicine, error)

type Result struct {
	Gen       uint64
	Query     string
	Medicines []model.Medicine
	Err       error
}

// Debouncer delays each input by a fixed interval. A newer input cancels the
// pending timer and the in-flight request of the older one.
type Debouncer struct {
	delay   time.Duration
	search  Func
	deliver func(Result)

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// New returns a debouncer. deliver runs with the debouncer's lock held and
// must not call Submit.
func New(delay time.Duration, search Func, deliver func(Result)) *Debouncer {
	return &Debouncer{delay: delay, search: search, deliver: deliver}
}

// Submit records a new input and returns its generation. A blank input
// clears the results at once without querying.
func (d *Debouncer) Submit(input string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return d.gen
	}

	d.gen++
	gen := d.gen
	d.stopLocked()

	q := strings.TrimSpace(input)
	if q == "" {
		d.deliver(Result{Gen: gen, Medicines: []model.Medicine{}})
		return gen
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, q) })
	return gen
}

func (d *Debouncer) fire(gen uint64, q string) {
	d.mu.Lock()
	if gen != d.gen || d.closed {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	meds, err := d.search(ctx, q)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen || d.closed || errors.Is(err, context.Canceled) {
		return
	}
	d.deliver(Result{Gen: gen, Query: q, Medicines: meds, Err: err})
}

// Latest is the generation of the most recent input.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Close drops the pending input and cancels any in-flight request.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.gen++
	d.stopLocked()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
