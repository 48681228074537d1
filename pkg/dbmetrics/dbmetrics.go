package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// DefaultPoolStatsInterval период сбора статистики connection pool
const DefaultPoolStatsInterval = 15 * time.Second

// DBExecutor минимальный интерфейс для выполнения запросов.
// Реализуется *sql.DB, *sql.Tx и *DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB обертка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает db и запускает сбор статистики пула с периодом interval до закрытия stop
func Wrap(db *sql.DB, m *metrics.Metrics, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}
	go wrapped.collectPoolStats(interval, stop)
	return wrapped
}

// WrapWithDefault как Wrap с периодом DefaultPoolStatsInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	return Wrap(db, m, DefaultPoolStatsInterval, stop)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext ошибки, проявляющиеся только при Scan, в метрики не попадают
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start), row.Err())
	return row
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start), err)
	return res, err
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordPoolStats()
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	d.metrics.SetDBConnections("open", stats.OpenConnections)
	d.metrics.SetDBConnections("in_use", stats.InUse)
	d.metrics.SetDBConnections("idle", stats.Idle)
}
