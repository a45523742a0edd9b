package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"pns-graph/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitoringWorker_SamplesProcess(t *testing.T) {
	req := require.New(t)
	metrics := observability.NewMetrics()
	w := NewHealthMonitoringWorker(slog.Default(), metrics, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	req.NoError(w.Run(ctx))
	req.Greater(testutil.ToFloat64(metrics.ResidentMemoryBytes), float64(0))
}
