package lightningd

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

// DefaultTimeout bounds a single JSON-RPC call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Service wraps the lightningd JSON-RPC interface
type Service interface {
	Getinfo(ctx context.Context) (GetinfoResponse, error)
	Invoice(ctx context.Context, req InvoiceRequest) (InvoiceResponse, error)
	ListFunds(ctx context.Context) (ListfundsResponse, error)
	Pay(ctx context.Context, req PayRequest) (PayResponse, error)
}

// RPCError an error object returned by lightningd
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("lightningd error %d: %s", e.Code, e.Message)
}

type request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// service talks JSON-RPC 2.0 to lightningd over its unix socket
type service struct {
	// rpcFile path of the lightning-rpc socket
	rpcFile string

	// timeout for a single call
	timeout time.Duration

	dialer net.Dialer

	// nextID source of request ids
	nextID uint64
}

// NewService constructs a valid lightningd Service.
// A connection is opened per call so the service is safe for concurrent use.
func NewService(rpcFile string, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		rpcFile: rpcFile,
		timeout: timeout,
	}
}

func (s *service) Getinfo(ctx context.Context) (GetinfoResponse, error) {
	var info GetinfoResponse
	err := s.call(ctx, "getinfo", struct{}{}, &info)
	return info, err
}

func (s *service) Invoice(ctx context.Context, req InvoiceRequest) (InvoiceResponse, error) {
	var invoice InvoiceResponse
	err := s.call(ctx, "invoice", req, &invoice)
	return invoice, err
}

func (s *service) ListFunds(ctx context.Context) (ListfundsResponse, error) {
	var funds ListfundsResponse
	err := s.call(ctx, "listfunds", struct{}{}, &funds)
	return funds, err
}

func (s *service) Pay(ctx context.Context, req PayRequest) (PayResponse, error) {
	var pay PayResponse
	err := s.call(ctx, "pay", req, &pay)
	return pay, err
}

// call performs one request/response exchange and decodes the result into out.
func (s *service) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.dialer.DialContext(ctx, "unix", s.rpcFile)
	if err != nil {
		return fmt.Errorf("%v: dial: %w", method, err)
	}
	defer conn.Close()

	// unblock reads and writes as soon as the caller gives up
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	req := request{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&s.nextID, 1),
		Method:  method,
		Params:  params,
	}
	if err := json.NewEncoder(conn).Encode(&req); err != nil {
		return fmt.Errorf("%v: writing request: %w", method, s.cause(ctx, err))
	}

	var resp response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return fmt.Errorf("%v: decoding response: %w", method, s.cause(ctx, err))
	}
	if resp.ID != req.ID {
		return fmt.Errorf("%v: response id %d does not match request id %d", method, resp.ID, req.ID)
	}
	if resp.Error != nil {
		return fmt.Errorf("%v: %w", method, resp.Error)
	}

	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("%v: decoding result: %w", method, err)
	}
	return nil
}

// cause prefers the context error over the i/o error it provoked
func (s *service) cause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
