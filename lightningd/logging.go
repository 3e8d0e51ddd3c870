package lightningd

import (
	"context"
	"time"

	"github.com/go-kit/log"
)

// loggingService decorates a lightningd.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Getinfo(ctx context.Context) (info GetinfoResponse, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "getinfo",
			"blockheight", info.Blockheight,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Getinfo(ctx)
}

func (s *loggingService) Invoice(ctx context.Context, req InvoiceRequest) (invoice InvoiceResponse, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "invoice",
			"label", req.Label,
			"amount", req.AmountMsat.Amount,
			"payment_hash", invoice.PaymentHash,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Invoice(ctx, req)
}

func (s *loggingService) ListFunds(ctx context.Context) (funds ListfundsResponse, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "listfunds",
			"outputs", len(funds.Outputs),
			"channels", len(funds.Channels),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListFunds(ctx)
}

func (s *loggingService) Pay(ctx context.Context, req PayRequest) (pay PayResponse, err error) {
	defer func(begin time.Time) {
		var amount Amount
		if req.AmountMsat != nil {
			amount = req.AmountMsat.Amount
		}
		s.logger.Log(
			"method", "pay",
			"amount", amount,
			"status", pay.Status,
			"payment_hash", pay.PaymentHash,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pay(ctx, req)
}
