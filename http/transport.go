package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-cln-grpc-proxy/lightningd"
)

// healthTimeout bounds the getinfo call behind /healthz
const healthTimeout = 5 * time.Second

// Server dependencies for the operational HTTP endpoints
type Server struct {
	Service  lightningd.Service
	Gatherer prometheus.Gatherer
	router   http.ServeMux
}

func NewServer(s lightningd.Service, g prometheus.Gatherer) *Server {
	server := &Server{
		Service:  s,
		Gatherer: g,
		router:   http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	s.router.Handle("/healthz", s.health())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// health produces an HTTP handler reporting whether lightningd answers
func (s *Server) health() http.HandlerFunc {

	// response for marshalling JSON responses to return to clients
	type response struct {
		Status      string `json:"status"`
		Blockheight uint32 `json:"blockheight"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			rw.Write([]byte(`{"error": "method not allowed"}`))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		info, err := s.Service.Getinfo(ctx)
		if err != nil {
			rw.WriteHeader(http.StatusServiceUnavailable)
			rw.Write([]byte(`{"error": "lightningd unavailable"}`))
			return
		}

		response := response{
			Status:      "ok",
			Blockheight: info.Blockheight,
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}
