package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	operationDurationHistogram     *prometheus.HistogramVec
	operationResultCounter         *prometheus.CounterVec
	httpRequestDurationHistogram   *prometheus.HistogramVec
	clientRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	queueSendErrorCounter          prometheus.Counter
	totalSupplyGauge               prometheus.Gauge
	totalStakedGauge               prometheus.Gauge
	rewardsPaidGauge               prometheus.Gauge
	activeStakesGauge              prometheus.Gauge
	tokenHoldersGauge              prometheus.Gauge
	dbLatency                      *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	operationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "operation_duration_seconds",
			Help:    "Histogram of core operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"op", "status"},
	)

	operationResultCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operation_results_total",
			Help: "Total core operation results by kind and error code.",
		},
		[]string{"op", "code"},
	)

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming HTTP request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	// client requests are the ones sending to other services
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	// counter for failures to publish operation events to the queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	// Supply gauges are approximations in whole tokens: amounts are 256-bit
	// integers and only scrape-precision matters here.
	totalSupplyGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_supply_tokens",
			Help: "Current total supply in whole tokens (approximate).",
		},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_staked_tokens",
			Help: "Principal currently staked in whole tokens (approximate).",
		},
	)

	rewardsPaidGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rewards_paid_tokens",
			Help: "Cumulative rewards paid in whole tokens (approximate).",
		},
	)

	activeStakesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_stakes_count",
			Help: "Number of accounts with an active stake.",
		},
	)

	tokenHoldersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "token_holders_count",
			Help: "Number of accounts with a positive balance.",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		operationDurationHistogram,
		operationResultCounter,
		httpRequestDurationHistogram,
		clientRequestDurationHistogram,
		pollerDurationHistogram,
		queueSendErrorCounter,
		totalSupplyGauge,
		totalStakedGauge,
		rewardsPaidGauge,
		activeStakesGauge,
		tokenHoldersGauge,
		dbLatency,
	)
}

func RecordOperationDuration(d time.Duration, op string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	operationDurationHistogram.WithLabelValues(op, status.String()).Observe(d.Seconds())
}

// RecordOperationResult counts one operation outcome; code is "OK" for
// applied operations and the stable error code for rejections.
func RecordOperationResult(op, code string) {
	operationResultCounter.WithLabelValues(op, code).Inc()
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordLedgerStats(totalSupply, totalStaked, rewardsPaid float64, activeStakes, holders int) {
	totalSupplyGauge.Set(totalSupply)
	totalStakedGauge.Set(totalStaked)
	rewardsPaidGauge.Set(rewardsPaid)
	activeStakesGauge.Set(float64(activeStakes))
	tokenHoldersGauge.Set(float64(holders))
}

// RecordHTTPRequestDuration observes one incoming HTTP request. The path
// label is the matched route pattern, so it is only known once the request
// has been served.
func RecordHTTPRequestDuration(d time.Duration, method, path string, statusCode int) {
	httpRequestDurationHistogram.WithLabelValues(
		method,
		path,
		strconv.Itoa(statusCode),
	).Observe(d.Seconds())
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

// pollerFunction alias is private and should be used only here
type pollerFunction = func(ctx context.Context) error

// RecordPollerDuration wraps a poller pass with a duration observation.
func RecordPollerDuration(typ string, f pollerFunction) pollerFunction {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := f(ctx)
		duration := time.Since(startTime).Seconds()

		status := Success
		if err != nil {
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(typ, status.String()).Observe(duration)

		return err
	}
}
