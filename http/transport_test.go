package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"go-cln-grpc-proxy/lightningd"
)

type mock struct {
	err error
}

func (m *mock) Getinfo(_ context.Context) (lightningd.GetinfoResponse, error) {
	return lightningd.GetinfoResponse{Blockheight: 812345}, m.err
}

func (m *mock) Invoice(_ context.Context, _ lightningd.InvoiceRequest) (lightningd.InvoiceResponse, error) {
	return lightningd.InvoiceResponse{}, m.err
}

func (m *mock) ListFunds(_ context.Context) (lightningd.ListfundsResponse, error) {
	return lightningd.ListfundsResponse{}, m.err
}

func (m *mock) Pay(_ context.Context, _ lightningd.PayRequest) (lightningd.PayResponse, error) {
	return lightningd.PayResponse{}, m.err
}

func TestServer_Healthz(t *testing.T) {
	server := NewServer(&mock{}, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/healthz", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `{"status":"ok","blockheight":812345}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_HealthzUnavailable(t *testing.T) {
	server := NewServer(&mock{err: errors.New("dial unix: connection refused")}, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/healthz", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 503, w.Code)
	assert.Equal(t, `{"error": "lightningd unavailable"}`, w.Body.String())
}

func TestServer_HealthzMethod(t *testing.T) {
	server := NewServer(&mock{}, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/healthz", strings.NewReader("{}"))

	server.ServeHTTP(w, r)

	assert.Equal(t, 405, w.Code)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := lightningd.NewMetrics(reg)
	svc := lightningd.NewInstrumentingService(metrics, &mock{})
	server := NewServer(svc, reg)

	_, _ = svc.Getinfo(context.Background())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/metrics", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `clngateway_lightningd_requests_total{method="getinfo",outcome="ok"} 1`)
}
