package lightningd

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics the collectors used by the instrumenting service
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates and registers the lightningd call collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clngateway",
			Subsystem: "lightningd",
			Name:      "requests_total",
			Help:      "JSON-RPC calls made to lightningd, by method and outcome.",
		}, []string{"method", "outcome"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clngateway",
			Subsystem: "lightningd",
			Name:      "request_duration_seconds",
			Help:      "Duration of JSON-RPC calls made to lightningd.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	reg.MustRegister(m.Requests, m.Latency)
	return m
}

// instrumentingService decorates a lightningd.Service with prometheus metrics
type instrumentingService struct {
	metrics *Metrics
	next    Service
}

// NewInstrumentingService returns a new instrumenting Service
func NewInstrumentingService(metrics *Metrics, s Service) Service {
	return &instrumentingService{
		metrics: metrics,
		next:    s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.Requests.WithLabelValues(method, outcome).Inc()
	s.metrics.Latency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Getinfo(ctx context.Context) (info GetinfoResponse, err error) {
	defer func(begin time.Time) { s.observe("getinfo", begin, err) }(time.Now())
	return s.next.Getinfo(ctx)
}

func (s *instrumentingService) Invoice(ctx context.Context, req InvoiceRequest) (invoice InvoiceResponse, err error) {
	defer func(begin time.Time) { s.observe("invoice", begin, err) }(time.Now())
	return s.next.Invoice(ctx, req)
}

func (s *instrumentingService) ListFunds(ctx context.Context) (funds ListfundsResponse, err error) {
	defer func(begin time.Time) { s.observe("listfunds", begin, err) }(time.Now())
	return s.next.ListFunds(ctx)
}

func (s *instrumentingService) Pay(ctx context.Context, req PayRequest) (pay PayResponse, err error) {
	defer func(begin time.Time) { s.observe("pay", begin, err) }(time.Now())
	return s.next.Pay(ctx, req)
}
