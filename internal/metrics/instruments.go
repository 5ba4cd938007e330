package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentPrefix namespaces every exported series.
const instrumentPrefix = "superliga_"

type otelInstruments struct {
	ctx context.Context

	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram

	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	breakerChanges    metric.Int64Counter

	pollerCycles    metric.Int64Counter
	pollerErrors    metric.Int64Counter
	pollerLatencyMs metric.Float64Histogram

	cacheLookups  metric.Int64Counter
	revalidations metric.Int64Counter
}

// instrumentBuilder keeps the first registration error so construction reads as a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	if b.err != nil {
		return nil
	}
	c, err := b.meter.Int64Counter(instrumentPrefix+name, metric.WithDescription(desc))
	b.err = err
	return c
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Float64Histogram(instrumentPrefix+name, metric.WithDescription(desc), metric.WithUnit("ms"))
	b.err = err
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(defaultServiceName)}
	inst := &otelInstruments{
		ctx: context.Background(),

		requests:         b.counter("http_requests_total", "HTTP requests served"),
		requestLatencyMs: b.histogram("http_request_duration", "HTTP request latency"),

		providerAttempts:  b.counter("provider_attempts_total", "Upstream provider calls"),
		providerErrors:    b.counter("provider_errors_total", "Failed upstream provider calls"),
		providerLatencyMs: b.histogram("provider_duration", "Upstream provider latency"),
		rateLimitHits:     b.counter("provider_rate_limit_hits_total", "Upstream 429 responses"),
		retryAfterMs:      b.histogram("provider_retry_after", "Retry-After hints from upstream"),
		breakerChanges:    b.counter("provider_breaker_state_changes_total", "Circuit breaker transitions"),

		pollerCycles:    b.counter("poller_cycles_total", "Cache warm-up cycles"),
		pollerErrors:    b.counter("poller_errors_total", "Cache warm-up cycles with errors"),
		pollerLatencyMs: b.histogram("poller_cycle_duration", "Cache warm-up cycle latency"),

		cacheLookups:  b.counter("cache_lookups_total", "Cache lookups by tag and result"),
		revalidations: b.counter("cache_revalidations_total", "Tag revalidations by outcome"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, millis(duration), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, attrs)
	o.providerLatencyMs.Record(o.ctx, millis(duration), attrs)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.rateLimitHits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, millis(retryAfter), attrs)
	}
}

func (o *otelInstruments) recordBreakerState(provider, state string) {
	if o == nil {
		return
	}
	o.breakerChanges.Add(o.ctx, 1, metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrState, state),
	))
}

func (o *otelInstruments) recordPoller(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.pollerCycles.Add(o.ctx, 1)
	o.pollerLatencyMs.Record(o.ctx, millis(duration))
	if err != nil {
		o.pollerErrors.Add(o.ctx, 1)
	}
}

func (o *otelInstruments) recordCacheLookup(tag string, hit bool) {
	if o == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	o.cacheLookups.Add(o.ctx, 1, metric.WithAttributes(
		attribute.String(AttrTag, tag),
		attribute.String(AttrResult, result),
	))
}

func (o *otelInstruments) recordRevalidation(tag, outcome string) {
	if o == nil {
		return
	}
	o.revalidations.Add(o.ctx, 1, metric.WithAttributes(
		attribute.String(AttrTag, tag),
		attribute.String(AttrOutcome, outcome),
	))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
