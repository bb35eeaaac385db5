package audit

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	logg   *logger.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(auditLogger *Logger, logg *logger.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}
	if logg == nil {
		logg = logger.Nop()
	}
	d := &Dispatcher{
		logger: auditLogger,
		logg:   logg,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.logg.Error(context.Background(), "audit error", err)
		}
	}
}

// Dispatch never blocks; a full queue drops the event so audit cannot fail a
// request. Events dispatched after Close are dropped too.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logg.Warn(context.Background(), "audit dispatcher closed, dropping event")
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.logg.Warn(context.Background(), "audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
