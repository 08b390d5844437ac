package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/igiehon-foundation/tournament-portal/internal/api/metrics"
	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditAppender persists a single status-change record.
type AuditAppender interface {
	Append(ctx context.Context, change domain.StatusChange) error
}

// Dispatcher writes status-change audit records off the request path. Records
// are sharded by registration ID so entries for one registration keep their
// order. The synchronous transition contract (write, then authoritative
// re-read) is unaffected: audit persistence is best-effort.
type Dispatcher struct {
	workers []chan domain.StatusChange
	sink    AuditAppender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink AuditAppender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StatusChange, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StatusChange, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues a status change for its registration's worker. Implements
// ports.AuditRecorder; blocks only when the worker channel is full.
func (d *Dispatcher) Record(change domain.StatusChange) {
	metrics.StatusTransitionsTotal.WithLabelValues(string(change.From), string(change.To)).Inc()
	d.workers[d.shardIndex(change.RegistrationID)] <- change
}

// shardIndex maps a registration ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(registrationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(registrationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StatusChange) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Append(ctx, change); err != nil {
				d.log.Error().Err(err).
					Str("registration_id", change.RegistrationID).
					Int("worker_id", id).
					Msg("audit append failed")
			}
		}
	}
}
