package goCell

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// auditDispatcher decouples violation reporting from the access hot path:
// Record enqueues, a single goroutine delivers to the sink. A nil
// *auditDispatcher (audit disabled) is a valid no-op receiver.
type auditDispatcher struct {
	cfg       AuditConfig
	sink      AuditSink
	ch        chan ViolationEvent
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newAuditDispatcher(cfg AuditConfig) *auditDispatcher {
	if !cfg.Enabled {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}

	sink := cfg.Sink
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &auditDispatcher{
		cfg:  cfg,
		sink: sink,
		ch:   make(chan ViolationEvent, cfg.BufferSize),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *auditDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.ch:
			d.sink.Emit(context.Background(), event)
		case <-d.done:
			// Drain whatever Record managed to enqueue before close.
			for {
				select {
				case event := <-d.ch:
					d.sink.Emit(context.Background(), event)
				default:
					return
				}
			}
		}
	}
}

// Record enqueues a violation event. With DropIfFull the event is counted
// as dropped when the buffer is full; otherwise Record blocks until the
// dispatcher makes room or closes.
func (d *auditDispatcher) Record(kind ViolationKind, brand, op, detail string) {
	if d == nil || d.closed.Load() {
		return
	}

	event := ViolationEvent{
		Timestamp: time.Now().UTC(),
		Kind:      kind.String(),
		Brand:     brand,
		Op:        op,
		Detail:    detail,
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- event:
		case <-d.done:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.ch <- event:
	case <-d.done:
	}
}

// Dropped reports how many events were discarded under DropIfFull pressure.
func (d *auditDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

// Close stops intake, drains the buffer into the sink, and waits for the
// delivery goroutine to finish. Idempotent; nil-safe.
func (d *auditDispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
	})
	d.wg.Wait()
}
