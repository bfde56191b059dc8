package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
)

const (
	namespace = "fibload"

	iterationsName = namespace + "_worker_iterations_total"
	computeName    = namespace + "_compute_duration_seconds"
	activeName     = namespace + "_active_workers"
)

// Collector records per-worker activity. It is safe for concurrent use by
// every worker of a pool.
type Collector struct {
	registry       *prometheus.Registry
	iterations     *prometheus.CounterVec
	computeSeconds prometheus.Histogram
	activeWorkers  prometheus.Gauge
}

// NewCollector creates a Collector backed by its own registry, with the Go
// runtime collector registered alongside.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: iterationsName,
			Help: "Completed compute-and-publish iterations, by result slot.",
		}, []string{"slot"}),
		computeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    computeName,
			Help:    "Wall time of one engine call, including any injected delay.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: activeName,
			Help: "Workers currently running their loop.",
		}),
	}
	c.registry.MustRegister(c.iterations, c.computeSeconds, c.activeWorkers, collectors.NewGoCollector())
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WorkerStarted marks a worker as running and creates its iteration series
// so a worker that never completes an iteration still reports zero.
func (c *Collector) WorkerStarted(slot int) {
	c.iterations.WithLabelValues(strconv.Itoa(slot))
	c.activeWorkers.Inc()
}

// WorkerStopped marks a worker as exited.
func (c *Collector) WorkerStopped(int) {
	c.activeWorkers.Dec()
}

// ObserveIteration records one completed iteration of slot.
func (c *Collector) ObserveIteration(slot int, compute time.Duration) {
	c.iterations.WithLabelValues(strconv.Itoa(slot)).Inc()
	c.computeSeconds.Observe(compute.Seconds())
}

// SlotStats is the iteration count of one slot.
type SlotStats struct {
	Slot       int
	Iterations uint64
}

// Summary is the aggregated view of a run.
type Summary struct {
	Slots           []SlotStats
	TotalIterations uint64
	MeanCompute     time.Duration
	ActiveWorkers   int
}

// Summarize gathers the registry into a Summary, slots in ascending order.
func (c *Collector) Summarize() (Summary, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("gather metrics: %w", err)
	}

	var s Summary
	for _, mf := range families {
		switch mf.GetName() {
		case iterationsName:
			for _, m := range mf.GetMetric() {
				slot, err := slotLabel(m)
				if err != nil {
					return Summary{}, err
				}
				n := uint64(m.GetCounter().GetValue())
				s.Slots = append(s.Slots, SlotStats{Slot: slot, Iterations: n})
				s.TotalIterations += n
			}
		case computeName:
			if ms := mf.GetMetric(); len(ms) == 1 {
				h := ms[0].GetHistogram()
				if count := h.GetSampleCount(); count > 0 {
					mean := time.Duration(h.GetSampleSum() / float64(count) * float64(time.Second))
					s.MeanCompute = mean.Round(time.Microsecond)
				}
			}
		case activeName:
			if ms := mf.GetMetric(); len(ms) == 1 {
				s.ActiveWorkers = int(ms[0].GetGauge().GetValue())
			}
		}
	}
	sort.Slice(s.Slots, func(i, j int) bool { return s.Slots[i].Slot < s.Slots[j].Slot })
	return s, nil
}

func slotLabel(m *dto.Metric) (int, error) {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "slot" {
			slot, err := strconv.Atoi(lp.GetValue())
			if err != nil {
				return 0, fmt.Errorf("parse slot label %q: %w", lp.GetValue(), err)
			}
			return slot, nil
		}
	}
	return 0, fmt.Errorf("metric %s has no slot label", iterationsName)
}
