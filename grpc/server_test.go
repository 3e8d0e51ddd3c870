package grpc

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"go-cln-grpc-proxy/lightningd"
	"go-cln-grpc-proxy/pb"
)

type mock struct {
	t       *testing.T
	info    lightningd.GetinfoResponse
	funds   lightningd.ListfundsResponse
	pay     lightningd.PayResponse
	err     error
	invoice *lightningd.InvoiceRequest
	payReq  *lightningd.PayRequest
}

func (m *mock) Getinfo(_ context.Context) (lightningd.GetinfoResponse, error) {
	return m.info, m.err
}

func (m *mock) Invoice(_ context.Context, req lightningd.InvoiceRequest) (lightningd.InvoiceResponse, error) {
	m.invoice = &req
	if m.err != nil {
		return lightningd.InvoiceResponse{}, m.err
	}
	return lightningd.InvoiceResponse{Bolt11: "lnbcrt1", PaymentHash: "00ff", ExpiresAt: 99}, nil
}

func (m *mock) ListFunds(_ context.Context) (lightningd.ListfundsResponse, error) {
	return m.funds, m.err
}

func (m *mock) Pay(_ context.Context, req lightningd.PayRequest) (lightningd.PayResponse, error) {
	m.payReq = &req
	return m.pay, m.err
}

// dialConn serves svc over an in-memory listener and returns a connection to it
func dialConn(t *testing.T, svc lightningd.Service, opts ...grpc.ServerOption) *grpc.ClientConn {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(append([]grpc.ServerOption{grpc.ForceServerCodec(pb.Codec{})}, opts...)...)
	pb.RegisterNodeServer(srv, NewServer(svc, log.NewNopLogger()))

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })

	return cc
}

func dial(t *testing.T, svc lightningd.Service, opts ...grpc.ServerOption) pb.NodeClient {
	return pb.NewNodeClient(dialConn(t, svc, opts...))
}

// protoNamed encodes like pb.Codec but announces itself the way protoc
// generated clients do, without the cln content subtype.
type protoNamed struct{ pb.Codec }

func (protoNamed) Name() string { return "proto" }

func TestServer_PlainGRPCClient(t *testing.T) {
	svc := &mock{t: t, info: lightningd.GetinfoResponse{Alias: "plain", Blockheight: 7}}
	cc := dialConn(t, svc)

	out := &pb.GetinfoResponse{}
	err := cc.Invoke(context.Background(), "/cln.Node/Getinfo", &pb.GetinfoRequest{}, out, grpc.ForceCodec(protoNamed{}))

	require.NoError(t, err)
	assert.Equal(t, "plain", out.Alias)
	assert.Equal(t, uint32(7), out.Blockheight)

	amount := &pb.Amount{Unit: &pb.Amount_Satoshi{Satoshi: 3}}
	err = cc.Invoke(context.Background(), "/cln.Node/Invoice", &pb.InvoiceRequest{AmountMsat: amount, Label: "l"}, &pb.InvoiceResponse{}, grpc.ForceCodec(protoNamed{}))

	require.NoError(t, err)
	require.NotNil(t, svc.invoice)
	assert.Equal(t, lightningd.Satoshi(3), svc.invoice.AmountMsat.Amount)
}

func TestServer_Getinfo(t *testing.T) {
	svc := &mock{t: t, info: lightningd.GetinfoResponse{
		ID:                "02aa",
		Alias:             "SILENTARTIST",
		Color:             "ff0000",
		NumPeers:          2,
		Blockheight:       100,
		Network:           "regtest",
		FeesCollectedMsat: lightningd.AmountField{Amount: lightningd.Millibitcoin(2)},
	}}
	client := dial(t, svc)

	resp, err := client.Getinfo(context.Background(), &pb.GetinfoRequest{})

	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0xaa}, resp.Id)
	assert.Equal(t, []byte{0xff, 0x00, 0x00}, resp.Color)
	assert.Equal(t, "SILENTARTIST", resp.Alias)
	assert.Equal(t, uint32(100), resp.Blockheight)
	// millibitcoin has no wire form and is sent as satoshi
	assert.Equal(t, uint64(200000), resp.GetFeesCollectedMsat().GetSatoshi())
}

func TestServer_GetinfoOverflow(t *testing.T) {
	svc := &mock{t: t, info: lightningd.GetinfoResponse{
		FeesCollectedMsat: lightningd.AmountField{Amount: lightningd.Millibitcoin(math.MaxUint64)},
	}}
	client := dial(t, svc)

	_, err := client.Getinfo(context.Background(), &pb.GetinfoRequest{})

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "overflows")
}

func TestServer_Invoice(t *testing.T) {
	svc := &mock{t: t}
	client := dial(t, svc)

	resp, err := client.Invoice(context.Background(), &pb.InvoiceRequest{
		AmountMsat:  &pb.Amount{Unit: &pb.Amount_Satoshi{Satoshi: 42}},
		Label:       "coffee",
		Description: "one espresso",
	})

	require.NoError(t, err)
	assert.Equal(t, "lnbcrt1", resp.Bolt11)
	assert.Equal(t, []byte{0x00, 0xff}, resp.PaymentHash)
	require.NotNil(t, svc.invoice)
	assert.Equal(t, lightningd.Satoshi(42), svc.invoice.AmountMsat.Amount)
	assert.Equal(t, "coffee", svc.invoice.Label)
	assert.Nil(t, svc.invoice.Expiry)
}

func TestServer_InvoiceRejectsMissingUnit(t *testing.T) {
	tests := []struct {
		name string
		req  *pb.InvoiceRequest
	}{
		{"no amount", &pb.InvoiceRequest{Label: "a"}},
		{"amount without unit", &pb.InvoiceRequest{AmountMsat: &pb.Amount{}, Label: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock{t: t}
			client := dial(t, svc)

			_, err := client.Invoice(context.Background(), tt.req)

			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Nil(t, svc.invoice, "lightningd must not be called")
		})
	}
}

func TestServer_ListFunds(t *testing.T) {
	svc := &mock{t: t, funds: lightningd.ListfundsResponse{
		Outputs: []lightningd.ListfundsOutput{
			{TxID: "aa", Output: 1, AmountMsat: lightningd.AmountField{Amount: lightningd.Millisatoshi(2000)}, Status: "confirmed"},
		},
		Channels: []lightningd.ListfundsChannel{
			{
				PeerID:        "02bb",
				OurAmountMsat: lightningd.AmountField{Amount: lightningd.Satoshi(10)},
				AmountMsat:    lightningd.AmountField{Amount: lightningd.Bitcoin(1)},
				FundingTxID:   "cc",
				Connected:     true,
			},
		},
	}}
	client := dial(t, svc)

	resp, err := client.ListFunds(context.Background(), &pb.ListfundsRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Outputs, 1)
	assert.Equal(t, uint64(2000), resp.Outputs[0].AmountMsat.GetMillisatoshi())
	assert.Equal(t, []byte{0xaa}, resp.Outputs[0].Txid)
	require.Len(t, resp.Channels, 1)
	assert.Equal(t, uint64(10), resp.Channels[0].OurAmountMsat.GetSatoshi())
	assert.Equal(t, uint64(1), resp.Channels[0].AmountMsat.GetBitcoin())
	assert.True(t, resp.Channels[0].Connected)
}

func TestServer_ListFundsBadHex(t *testing.T) {
	svc := &mock{t: t, funds: lightningd.ListfundsResponse{
		Outputs: []lightningd.ListfundsOutput{{TxID: "zz"}},
	}}
	client := dial(t, svc)

	_, err := client.ListFunds(context.Background(), &pb.ListfundsRequest{})

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestServer_Pay(t *testing.T) {
	tests := []struct {
		name       string
		amount     *pb.Amount
		wantAmount lightningd.Amount
		wantCode   codes.Code
	}{
		{"without amount", nil, nil, codes.OK},
		{"with amount", &pb.Amount{Unit: &pb.Amount_Millisatoshi{Millisatoshi: 5000}}, lightningd.Millisatoshi(5000), codes.OK},
		{"amount without unit", &pb.Amount{}, nil, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock{t: t, pay: lightningd.PayResponse{
				PaymentPreimage: "0102",
				AmountMsat:      lightningd.AmountField{Amount: lightningd.Millisatoshi(5000)},
				AmountSentMsat:  lightningd.AmountField{Amount: lightningd.Millisatoshi(5001)},
				Status:          "complete",
				Parts:           1,
			}}
			client := dial(t, svc)

			resp, err := client.Pay(context.Background(), &pb.PayRequest{Bolt11: "lnbcrt1", AmountMsat: tt.amount})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode != codes.OK {
				assert.Nil(t, svc.payReq)
				return
			}
			require.NotNil(t, svc.payReq)
			if tt.wantAmount == nil {
				assert.Nil(t, svc.payReq.AmountMsat)
			} else {
				require.NotNil(t, svc.payReq.AmountMsat)
				assert.Equal(t, tt.wantAmount, svc.payReq.AmountMsat.Amount)
			}
			assert.Equal(t, []byte{0x01, 0x02}, resp.PaymentPreimage)
			assert.Equal(t, uint64(5001), resp.AmountSentMsat.GetMillisatoshi())
			assert.Equal(t, "complete", resp.Status)
		})
	}
}

func TestServer_PayRequiresBolt11(t *testing.T) {
	client := dial(t, &mock{t: t})

	_, err := client.Pay(context.Background(), &pb.PayRequest{})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"lightningd refused", &lightningd.RPCError{Code: 900, Message: "Duplicate label"}, codes.Unknown},
		{"wrapped refusal", errors.Join(errors.New("invoice"), &lightningd.RPCError{Code: 900, Message: "x"}), codes.Unknown},
		{"bad amount in result", lightningd.ErrInvalidAmount, codes.Internal},
		{"timeout", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"socket gone", errors.New("dial unix: no such file"), codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := dial(t, &mock{t: t, err: tt.err})

			_, err := client.Getinfo(context.Background(), &pb.GetinfoRequest{})

			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestServer_RPCErrorMessage(t *testing.T) {
	client := dial(t, &mock{t: t, err: &lightningd.RPCError{Code: 900, Message: "Duplicate label"}})

	_, err := client.Invoice(context.Background(), &pb.InvoiceRequest{
		AmountMsat: &pb.Amount{Unit: &pb.Amount_Millisatoshi{Millisatoshi: 1}},
	})

	assert.Equal(t, "Duplicate label", status.Convert(err).Message())
}
