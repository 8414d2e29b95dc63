package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ptcoach/personal-trainer/internal/api/metrics"
	"github.com/ptcoach/personal-trainer/internal/core/domain"
	"github.com/ptcoach/personal-trainer/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// WeightAppender is the service operation each worker calls.
type WeightAppender interface {
	AppendWeight(ctx context.Context, in ports.WeightSampleInput) (*domain.Client, bool, error)
}

// Dispatcher routes weight samples to a fixed set of workers using consistent
// hashing on the client id. All samples of one client are applied in order by
// the same worker, which keeps a batch's samples in submission order and
// avoids revision conflicts between workers.
type Dispatcher struct {
	workers []chan ports.WeightSampleInput
	service WeightAppender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service WeightAppender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.WeightSampleInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WeightSampleInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a sample to the worker responsible for its client.
// The call blocks once that worker's buffer is full.
func (d *Dispatcher) Enqueue(sample ports.WeightSampleInput) {
	idx := d.shardIndex(sample.ClientID)
	d.workers[idx] <- sample
	metrics.WeightQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues samples preserving their order per client.
func (d *Dispatcher) EnqueueBatch(samples []ports.WeightSampleInput) {
	for _, s := range samples {
		d.Enqueue(s)
	}
}

// shardIndex maps a client id deterministically to a worker index.
func (d *Dispatcher) shardIndex(clientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WeightSampleInput) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case sample, ok := <-ch:
			if !ok {
				return
			}
			metrics.WeightQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			start := time.Now()
			result := "ok"
			if _, replayed, err := d.service.AppendWeight(ctx, sample); err != nil {
				result = "error"
				d.log.Error().Err(err).
					Str("client_id", sample.ClientID).
					Int("worker_id", id).
					Msg("weight sample processing failed")
			} else if replayed {
				result = "duplicate"
			}
			metrics.WeightSamplesProcessedTotal.WithLabelValues(result).Inc()
			metrics.WeightSampleProcessingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
		}
	}
}
