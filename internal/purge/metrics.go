package purge

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var purgeTracer = otel.Tracer("github.com/clusterwm/acctarchive/purge")

var purgeMetrics struct {
	rowsArchived    metric.Int64Counter
	rowsPurged      metric.Int64Counter
	deleteBatchMs   metric.Float64Histogram
	retryCount      metric.Int64Counter
}

func init() {
	m := otel.Meter("github.com/clusterwm/acctarchive/purge")
	purgeMetrics.rowsArchived, _ = m.Int64Counter("acctarchive.rows_archived",
		metric.WithDescription("Rows written to archive files"),
		metric.WithUnit("{row}"),
	)
	purgeMetrics.rowsPurged, _ = m.Int64Counter("acctarchive.rows_purged",
		metric.WithDescription("Rows removed from the live store after archiving"),
		metric.WithUnit("{row}"),
	)
	purgeMetrics.deleteBatchMs, _ = m.Float64Histogram("acctarchive.delete_batch_duration_ms",
		metric.WithDescription("Duration of a single bounded DELETE batch"),
		metric.WithUnit("ms"),
	)
	purgeMetrics.retryCount, _ = m.Int64Counter("acctarchive.sql_retry_count",
		metric.WithDescription("SQL operations retried due to transient connection errors"),
		metric.WithUnit("{retry}"),
	)
}
