package observability

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client used for metrics
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// HTTPMiddleware wraps an HTTP handler
type HTTPMiddleware func(http.Handler) http.Handler

// maxDatumsPerCall is the PutMetricData limit on datums per request
const maxDatumsPerCall = 1000

// CloudWatchMetrics sends translation cache metrics to CloudWatch. Inside a
// request wrapped by Middleware the datums are buffered and sent together
// when the request completes; elsewhere each datum is sent on its own.
type CloudWatchMetrics struct {
	namespace string
	client    CloudWatchAPI
	logger    *zap.Logger
}

// NewCloudWatchMetrics creates a new CloudWatch metrics recorder
func NewCloudWatchMetrics(namespace string, client CloudWatchAPI, logger *zap.Logger) *CloudWatchMetrics {
	return &CloudWatchMetrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

type batchKey struct{}

// batch collects the datums recorded while serving one request
type batch struct {
	mu     sync.Mutex
	datums []types.MetricDatum
}

func (b *batch) add(datum types.MetricDatum) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.datums = append(b.datums, datum)
}

func (b *batch) drain() []types.MetricDatum {
	b.mu.Lock()
	defer b.mu.Unlock()
	datums := b.datums
	b.datums = nil
	return datums
}

// Middleware buffers the metrics recorded during a request and flushes them
// once the handler returns
func (m *CloudWatchMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := &batch{}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), batchKey{}, b)))

		// Flushed after the response regardless of request cancellation
		m.send(context.WithoutCancel(r.Context()), b.drain())
	})
}

// RecordCacheHit records a translation cache hit
func (m *CloudWatchMetrics) RecordCacheHit(ctx context.Context, language string) {
	m.put(ctx, count("TranslationCacheHit", language))
}

// RecordCacheMiss records a translation cache miss
func (m *CloudWatchMetrics) RecordCacheMiss(ctx context.Context, language string) {
	m.put(ctx, count("TranslationCacheMiss", language))
}

// RecordTranslatorCall records the latency and outcome of one translator call
func (m *CloudWatchMetrics) RecordTranslatorCall(ctx context.Context, language string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	m.put(ctx, types.MetricDatum{
		MetricName: aws.String("TranslatorLatency"),
		Dimensions: []types.Dimension{
			{Name: aws.String("Language"), Value: aws.String(language)},
			{Name: aws.String("Status"), Value: aws.String(status)},
		},
		Value:     aws.Float64(float64(latency.Milliseconds())),
		Unit:      types.StandardUnitMilliseconds,
		Timestamp: aws.Time(time.Now()),
	})
}

func (m *CloudWatchMetrics) put(ctx context.Context, datum types.MetricDatum) {
	if b, ok := ctx.Value(batchKey{}).(*batch); ok {
		b.add(datum)
		return
	}
	m.send(ctx, []types.MetricDatum{datum})
}

func (m *CloudWatchMetrics) send(ctx context.Context, datums []types.MetricDatum) {
	if m.client == nil {
		return
	}

	for len(datums) > 0 {
		n := len(datums)
		if n > maxDatumsPerCall {
			n = maxDatumsPerCall
		}

		input := &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(m.namespace),
			MetricData: datums[:n],
		}

		// Metrics are best effort and never fail the request
		if _, err := m.client.PutMetricData(ctx, input); err != nil {
			m.logger.Warn("Failed to send metrics",
				zap.Int("datums", n),
				zap.Error(err),
			)
		}
		datums = datums[n:]
	}
}

func count(name, language string) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Dimensions: []types.Dimension{
			{Name: aws.String("Language"), Value: aws.String(language)},
		},
		Value:     aws.Float64(1),
		Unit:      types.StandardUnitCount,
		Timestamp: aws.Time(time.Now()),
	}
}

var (
	// Prometheus collectors are registered once per process
	promOnce      sync.Once
	promCollector *PrometheusMetrics
)

// PrometheusMetrics exposes translation cache metrics for scraping
type PrometheusMetrics struct {
	registry        *prometheus.Registry
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	translatorCalls *prometheus.CounterVec
	translatorTime  *prometheus.HistogramVec
}

// NewPrometheusMetrics returns the process-wide Prometheus recorder
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	promOnce.Do(func() {
		registry := prometheus.NewRegistry()

		m := &PrometheusMetrics{
			registry: registry,
			cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translation_cache_hits_total",
				Help:      "Translation lookups served from the translation store",
			}, []string{"language"}),
			cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translation_cache_misses_total",
				Help:      "Translation lookups that required the translator",
			}, []string{"language"}),
			translatorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translator_calls_total",
				Help:      "Calls made to the translator",
			}, []string{"language", "status"}),
			translatorTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "translator_call_duration_seconds",
				Help:      "Translator call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			}, []string{"language"}),
		}

		registry.MustRegister(m.cacheHits, m.cacheMisses, m.translatorCalls, m.translatorTime)
		promCollector = m
	})

	return promCollector
}

// RecordCacheHit records a translation cache hit
func (m *PrometheusMetrics) RecordCacheHit(ctx context.Context, language string) {
	m.cacheHits.WithLabelValues(language).Inc()
}

// RecordCacheMiss records a translation cache miss
func (m *PrometheusMetrics) RecordCacheMiss(ctx context.Context, language string) {
	m.cacheMisses.WithLabelValues(language).Inc()
}

// RecordTranslatorCall records the latency and outcome of one translator call
func (m *PrometheusMetrics) RecordTranslatorCall(ctx context.Context, language string, latency time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.translatorCalls.WithLabelValues(language, status).Inc()
	m.translatorTime.WithLabelValues(language).Observe(latency.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// NopMetrics discards everything
type NopMetrics struct{}

func (NopMetrics) RecordCacheHit(ctx context.Context, language string)  {}
func (NopMetrics) RecordCacheMiss(ctx context.Context, language string) {}
func (NopMetrics) RecordTranslatorCall(ctx context.Context, language string, latency time.Duration, err error) {
}
