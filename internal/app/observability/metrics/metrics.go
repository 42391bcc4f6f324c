package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	UsersTrackedTotal   metric.Int64Counter
	RewardsAwardedTotal metric.Int64Counter
	SweepDuration       metric.Float64Histogram
	HTTPRequestsTotal   metric.Int64Counter
	RegisteredUsers     metric.Int64Gauge
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("roamly")
		var err error
		m := &AppMetrics{}

		m.UsersTrackedTotal, err = meter.Int64Counter(
			"users_tracked_total",
			metric.WithDescription("Total number of user location tracks completed"),
			metric.WithUnit("{track}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create users_tracked_total: %v", err)
		}

		m.RewardsAwardedTotal, err = meter.Int64Counter(
			"rewards_awarded_total",
			metric.WithDescription("Total number of user rewards awarded"),
			metric.WithUnit("{reward}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create rewards_awarded_total: %v", err)
		}

		m.SweepDuration, err = meter.Float64Histogram(
			"tracking_sweep_duration_seconds",
			metric.WithDescription("Duration of all-users tracking sweeps"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create tracking_sweep_duration_seconds: %v", err)
		}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.RegisteredUsers, err = meter.Int64Gauge(
			"registered_users",
			metric.WithDescription("Number of users in the registry"),
			metric.WithUnit("{user}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create registered_users: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance, or nil before InitAppMetrics.
func Get() *AppMetrics {
	return appMetrics
}

// RecordSweep records the outcome of one all-users tracking sweep.
func RecordSweep(ctx context.Context, users int, elapsed time.Duration) {
	m := Get()
	if m == nil {
		return
	}
	m.UsersTrackedTotal.Add(ctx, int64(users))
	m.SweepDuration.Record(ctx, elapsed.Seconds())
}

// RecordRewards adds newly awarded rewards to the counter.
func RecordRewards(ctx context.Context, count int) {
	m := Get()
	if m == nil || count == 0 {
		return
	}
	m.RewardsAwardedTotal.Add(ctx, int64(count))
}

// RecordHTTPRequest counts one completed HTTP request.
func RecordHTTPRequest(ctx context.Context) {
	m := Get()
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.Add(ctx, 1)
}

// RecordRegisteredUsers records the current registry size.
func RecordRegisteredUsers(ctx context.Context, count int) {
	m := Get()
	if m == nil {
		return
	}
	m.RegisteredUsers.Record(ctx, int64(count))
}
