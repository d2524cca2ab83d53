package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/sadopc/pomo/internal/eventlog"
	"github.com/sadopc/pomo/internal/session"
)

// Appender is the minimal surface Writer needs from the store.
type Appender interface {
	SaveSession(session.Record) error
}

const (
	writerQueueSize = 64
	maxAttempts     = 3
	initialBackoff  = 50 * time.Millisecond
)

// Writer drains session records onto an Appender from a background
// goroutine so the caller never blocks on disk. Transient errors are
// retried with doubling backoff; a record that still fails is dropped
// onto the Errors channel and the failure is logged.
type Writer struct {
	queue  chan session.Record
	errs   chan error
	log    *eventlog.Logger
	wg     sync.WaitGroup
	closed sync.Once
}

func NewWriter(app Appender, log *eventlog.Logger) *Writer {
	w := &Writer{
		queue: make(chan session.Record, writerQueueSize),
		errs:  make(chan error, writerQueueSize),
		log:   log,
	}
	w.wg.Add(1)
	go w.run(app)
	return w
}

// Enqueue hands a record to the background writer. It returns false
// when the queue is full rather than blocking the caller.
func (w *Writer) Enqueue(rec session.Record) bool {
	select {
	case w.queue <- rec:
		return true
	default:
		return false
	}
}

// Errors reports records that could not be persisted.
func (w *Writer) Errors() <-chan error {
	return w.errs
}

// Close stops accepting records and waits for in-flight writes.
func (w *Writer) Close() {
	w.closed.Do(func() {
		close(w.queue)
	})
	w.wg.Wait()
}

func (w *Writer) run(app Appender) {
	defer w.wg.Done()
	for rec := range w.queue {
		w.save(app, rec)
	}
}

func (w *Writer) save(app Appender, rec session.Record) {
	backoff := initialBackoff
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = app.SaveSession(rec)
		if err == nil {
			return
		}
		if !IsTransient(err) {
			break
		}
		w.log.Append(eventlog.Event{
			Event:   eventlog.EventWriteRetry,
			Tag:     rec.Tag,
			Attempt: attempt,
			Error:   err.Error(),
		})
		time.Sleep(backoff)
		backoff *= 2
	}

	w.log.Append(eventlog.Event{
		Event: eventlog.EventWriteFailed,
		Tag:   rec.Tag,
		Error: err.Error(),
	})
	select {
	case w.errs <- fmt.Errorf("persist session: %w", err):
	default:
	}
}
