package metrics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/metrics/metric_events"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 1000
	exportTimeout    = 5 * time.Second
)

//go:generate mockery --name=Worker --dir=. --output=../../../mocks --filename=metrics_worker_mock.go --case=underscore --with-expecter
type Worker interface {
	StartWorkers(n int)
	Publish(evt *metric_events.Event)
	Shutdown()
}

type EventWorker struct {
	logger    *logrus.Logger
	exporters []telemetry.Exporter
	taskChan  chan *metric_events.Event
	mu        sync.RWMutex
	wg        sync.WaitGroup
	closed    bool
	dropped   atomic.Int64
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, queueSize int) *EventWorker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &EventWorker{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan *metric_events.Event, queueSize),
	}
}

func (w *EventWorker) StartWorkers(n int) {
	w.logger.WithField("workers", n).Info("starting metrics workers")
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for evt := range w.taskChan {
				w.export(evt)
			}
		}()
	}
}

// Publish never blocks; events are dropped when the queue is full or the
// worker is shut down.
func (w *EventWorker) Publish(evt *metric_events.Event) {
	if evt == nil || len(w.exporters) == 0 {
		return
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.taskChan <- evt:
	default:
		w.dropped.Add(1)
		w.logger.WithField("event_id", evt.EventID).Warn("metrics queue is full, dropping event")
	}
}

// Shutdown drains queued events before closing the exporters.
func (w *EventWorker) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.taskChan)
	w.mu.Unlock()

	w.logger.Info("shutting down metrics workers")
	w.wg.Wait()
	for _, exporter := range w.exporters {
		exporter.Close()
	}
	w.logger.Info("metrics workers stopped")
}

func (w *EventWorker) Dropped() int64 {
	return w.dropped.Load()
}

func (w *EventWorker) export(evt *metric_events.Event) {
	var failed []string
	for _, exporter := range w.exporters {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		err := exporter.Handle(ctx, evt)
		cancel()
		if err != nil {
			w.logger.WithFields(logrus.Fields{
				"exporter": exporter.Name(),
				"event_id": evt.EventID,
			}).WithError(err).Error("exporter failed")
			failed = append(failed, exporter.Name())
		}
	}
	if len(failed) > 0 {
		w.logger.WithField("failedExporters", failed).
			Warnf("%d exporters failed to handle classification event", len(failed))
	}
}
