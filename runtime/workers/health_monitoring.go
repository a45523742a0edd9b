package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"pns-graph/observability"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the indexer process and exposes it as gauges.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	metrics        *observability.Metrics
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, metrics *observability.Metrics, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		metrics:        metrics,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) {
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Error while finding process memory usage", "err", err)
		return
	}
	w.metrics.CPUPercent.Set(cpu)
	w.metrics.ResidentMemoryBytes.Set(float64(mem.RSS))
}
