package lightningd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
)

// cachingService decorates a lightningd.Service with a cache of the node info.
// getinfo is polled by health checks and dashboards far more often than it changes.
// The cachingService is concurrency safe; all other methods pass straight through.
type cachingService struct {
	// next the service being decorated with a cache
	next Service

	// info the cached getinfo result, valid while fetched is younger than ttl
	info    GetinfoResponse
	fetched time.Time
	cached  bool

	// ttl how long a cached value is served
	ttl time.Duration

	// lock synchronizes access to the cache to make it concurrency safe
	lock sync.RWMutex

	// now is replaced in tests
	now func() time.Time

	logger log.Logger
}

// NewCachingService returns a new caching Service
func NewCachingService(ttl time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		next:   s,
		ttl:    ttl,
		lock:   sync.RWMutex{},
		now:    time.Now,
		logger: logger,
	}
}

// Getinfo serves the cached node info, refreshing it once it is older than ttl
func (s *cachingService) Getinfo(ctx context.Context) (GetinfoResponse, error) {
	s.lock.RLock()
	info, ok := s.info, s.cached && s.now().Sub(s.fetched) < s.ttl
	s.lock.RUnlock()

	if ok {
		return info, nil
	}

	// Concurrent misses may refresh more than once; lightningd answers getinfo cheaply
	// so that is preferred over holding the lock across a socket round trip.
	info, err := s.refreshNow(ctx)
	if err != nil {
		return GetinfoResponse{}, fmt.Errorf("refreshing getinfo cache: %w", err)
	}
	return info, nil
}

// refreshNow refreshes the cached entry immediately
func (s *cachingService) refreshNow(ctx context.Context) (GetinfoResponse, error) {
	info, err := s.next.Getinfo(ctx)
	s.lock.Lock()
	defer s.lock.Unlock()
	if err != nil {
		s.uncache()
		s.logger.Log("msg", "getinfo refresh failed", "err", err)
		return GetinfoResponse{}, err
	}
	s.info = info
	s.fetched = s.now()
	s.cached = true
	return info, nil
}

// uncache drops the cached entry, lock must be held
func (s *cachingService) uncache() {
	s.info = GetinfoResponse{}
	s.cached = false
}

func (s *cachingService) Invoice(ctx context.Context, req InvoiceRequest) (InvoiceResponse, error) {
	return s.next.Invoice(ctx, req)
}

func (s *cachingService) ListFunds(ctx context.Context) (ListfundsResponse, error) {
	return s.next.ListFunds(ctx)
}

func (s *cachingService) Pay(ctx context.Context, req PayRequest) (PayResponse, error) {
	return s.next.Pay(ctx, req)
}
