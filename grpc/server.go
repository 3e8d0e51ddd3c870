package grpc

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-cln-grpc-proxy/convert"
	"go-cln-grpc-proxy/lightningd"
	"go-cln-grpc-proxy/pb"
)

// Server serves the Node gRPC service from a lightningd.Service
type Server struct {
	pb.UnimplementedNodeServer

	Service lightningd.Service
	logger  log.Logger
}

func NewServer(s lightningd.Service, logger log.Logger) *Server {
	return &Server{
		Service: s,
		logger:  logger,
	}
}

func (s *Server) Getinfo(ctx context.Context, _ *pb.GetinfoRequest) (*pb.GetinfoResponse, error) {
	info, err := s.Service.Getinfo(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	fees, err := s.toExternal("fees_collected_msat", info.FeesCollectedMsat)
	if err != nil {
		return nil, err
	}

	resp := &pb.GetinfoResponse{
		Alias:             info.Alias,
		NumPeers:          info.NumPeers,
		Blockheight:       info.Blockheight,
		Network:           info.Network,
		FeesCollectedMsat: fees,
		Version:           info.Version,
	}
	if resp.Id, err = s.decodeHex("id", info.ID); err != nil {
		return nil, err
	}
	if resp.Color, err = s.decodeHex("color", info.Color); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Server) Invoice(ctx context.Context, req *pb.InvoiceRequest) (*pb.InvoiceResponse, error) {
	if req.GetAmountMsat() == nil {
		return nil, status.Error(codes.InvalidArgument, "amount_msat is required")
	}
	amount, err := s.toInternal("amount_msat", req.GetAmountMsat())
	if err != nil {
		return nil, err
	}

	invoice, err := s.Service.Invoice(ctx, lightningd.InvoiceRequest{
		AmountMsat:  lightningd.AmountField{Amount: amount},
		Label:       req.Label,
		Description: req.Description,
		Expiry:      req.Expiry,
	})
	if err != nil {
		return nil, mapErr(err)
	}

	resp := &pb.InvoiceResponse{
		Bolt11:    invoice.Bolt11,
		ExpiresAt: invoice.ExpiresAt,
	}
	if resp.PaymentHash, err = s.decodeHex("payment_hash", invoice.PaymentHash); err != nil {
		return nil, err
	}
	if resp.PaymentSecret, err = s.decodeHex("payment_secret", invoice.PaymentSecret); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Server) ListFunds(ctx context.Context, _ *pb.ListfundsRequest) (*pb.ListfundsResponse, error) {
	funds, err := s.Service.ListFunds(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	resp := &pb.ListfundsResponse{}
	for _, o := range funds.Outputs {
		out := &pb.ListfundsOutputs{
			Output: o.Output,
			Status: o.Status,
		}
		if out.AmountMsat, err = s.toExternal("outputs.amount_msat", o.AmountMsat); err != nil {
			return nil, err
		}
		if out.Txid, err = s.decodeHex("outputs.txid", o.TxID); err != nil {
			return nil, err
		}
		resp.Outputs = append(resp.Outputs, out)
	}
	for _, c := range funds.Channels {
		ch := &pb.ListfundsChannels{
			FundingOutput: c.FundingOutput,
			Connected:     c.Connected,
		}
		if ch.OurAmountMsat, err = s.toExternal("channels.our_amount_msat", c.OurAmountMsat); err != nil {
			return nil, err
		}
		if ch.AmountMsat, err = s.toExternal("channels.amount_msat", c.AmountMsat); err != nil {
			return nil, err
		}
		if ch.PeerId, err = s.decodeHex("channels.peer_id", c.PeerID); err != nil {
			return nil, err
		}
		if ch.FundingTxid, err = s.decodeHex("channels.funding_txid", c.FundingTxID); err != nil {
			return nil, err
		}
		resp.Channels = append(resp.Channels, ch)
	}
	return resp, nil
}

func (s *Server) Pay(ctx context.Context, req *pb.PayRequest) (*pb.PayResponse, error) {
	if req.Bolt11 == "" {
		return nil, status.Error(codes.InvalidArgument, "bolt11 is required")
	}
	payReq := lightningd.PayRequest{Bolt11: req.Bolt11}
	// an absent amount is allowed, an amount without a unit is not
	if req.GetAmountMsat() != nil {
		amount, err := s.toInternal("amount_msat", req.GetAmountMsat())
		if err != nil {
			return nil, err
		}
		payReq.AmountMsat = &lightningd.AmountField{Amount: amount}
	}

	pay, err := s.Service.Pay(ctx, payReq)
	if err != nil {
		return nil, mapErr(err)
	}

	resp := &pb.PayResponse{
		Status: pay.Status,
		Parts:  pay.Parts,
	}
	if resp.AmountMsat, err = s.toExternal("amount_msat", pay.AmountMsat); err != nil {
		return nil, err
	}
	if resp.AmountSentMsat, err = s.toExternal("amount_sent_msat", pay.AmountSentMsat); err != nil {
		return nil, err
	}
	if resp.PaymentPreimage, err = s.decodeHex("payment_preimage", pay.PaymentPreimage); err != nil {
		return nil, err
	}
	if resp.PaymentHash, err = s.decodeHex("payment_hash", pay.PaymentHash); err != nil {
		return nil, err
	}
	return resp, nil
}

// toInternal converts a request amount; failures are the caller's fault.
func (s *Server) toInternal(field string, a *pb.Amount) (lightningd.Amount, error) {
	amount, err := convert.ToInternal(a)
	if err != nil {
		level.Debug(s.logger).Log("msg", "rejected request amount", "field", field, "amount", a, "err", err)
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%v: %v", field, err))
	}
	return amount, nil
}

// toExternal converts a response amount. lightningd omitting the field leaves it unset on the wire.
func (s *Server) toExternal(field string, f lightningd.AmountField) (*pb.Amount, error) {
	if f.Amount == nil {
		return nil, nil
	}
	amount, err := convert.ToExternal(f.Amount)
	if err != nil {
		level.Error(s.logger).Log("msg", "unconvertible response amount", "field", field, "amount", f.Amount, "err", err)
		return nil, status.Error(codes.Internal, fmt.Sprintf("%v: %v", field, err))
	}
	return amount, nil
}

func (s *Server) decodeHex(field, v string) ([]byte, error) {
	if v == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		level.Error(s.logger).Log("msg", "bad hex from lightningd", "field", field, "err", err)
		return nil, status.Error(codes.Internal, fmt.Sprintf("%v: %v", field, err))
	}
	return b, nil
}
