package pb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// The node messages mirror node.proto; field numbers must not change.

type GetinfoRequest struct{}

func (m *GetinfoRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *GetinfoRequest) Unmarshal(b []byte) error {
	return decodeFields(b, skip)
}

type GetinfoResponse struct {
	Id                []byte
	Alias             string
	Color             []byte
	NumPeers          uint32
	Blockheight       uint32
	Network           string
	FeesCollectedMsat *Amount
	Version           string
}

func (m *GetinfoResponse) GetFeesCollectedMsat() *Amount {
	if m != nil {
		return m.FeesCollectedMsat
	}
	return nil
}

func (m *GetinfoResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.Id)
	b = appendString(b, 2, m.Alias)
	b = appendBytes(b, 3, m.Color)
	b = appendVarint(b, 4, uint64(m.NumPeers))
	b = appendVarint(b, 5, uint64(m.Blockheight))
	b = appendString(b, 6, m.Network)
	b = appendAmount(b, 7, m.FeesCollectedMsat)
	b = appendString(b, 8, m.Version)
	return b, nil
}

func (m *GetinfoResponse) Unmarshal(b []byte) error {
	*m = GetinfoResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Id, n, err = consumeBytes(typ, b)
		case 2:
			m.Alias, n, err = consumeString(typ, b)
		case 3:
			m.Color, n, err = consumeBytes(typ, b)
		case 4:
			m.NumPeers, n, err = consumeUint32(typ, b)
		case 5:
			m.Blockheight, n, err = consumeUint32(typ, b)
		case 6:
			m.Network, n, err = consumeString(typ, b)
		case 7:
			m.FeesCollectedMsat, n, err = consumeAmount(typ, b, m.FeesCollectedMsat)
		case 8:
			m.Version, n, err = consumeString(typ, b)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type InvoiceRequest struct {
	AmountMsat  *Amount
	Label       string
	Description string
	// Expiry is a proto3 optional field
	Expiry *uint64
}

func (m *InvoiceRequest) GetAmountMsat() *Amount {
	if m != nil {
		return m.AmountMsat
	}
	return nil
}

func (m *InvoiceRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendAmount(b, 1, m.AmountMsat)
	b = appendString(b, 2, m.Label)
	b = appendString(b, 3, m.Description)
	if m.Expiry != nil {
		b = appendUint64(b, 4, *m.Expiry)
	}
	return b, nil
}

func (m *InvoiceRequest) Unmarshal(b []byte) error {
	*m = InvoiceRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.AmountMsat, n, err = consumeAmount(typ, b, m.AmountMsat)
		case 2:
			m.Label, n, err = consumeString(typ, b)
		case 3:
			m.Description, n, err = consumeString(typ, b)
		case 4:
			var v uint64
			v, n, err = consumeUint64(typ, b)
			m.Expiry = &v
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type InvoiceResponse struct {
	Bolt11        string
	PaymentHash   []byte
	PaymentSecret []byte
	ExpiresAt     uint64
}

func (m *InvoiceResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Bolt11)
	b = appendBytes(b, 2, m.PaymentHash)
	b = appendBytes(b, 3, m.PaymentSecret)
	b = appendVarint(b, 4, m.ExpiresAt)
	return b, nil
}

func (m *InvoiceResponse) Unmarshal(b []byte) error {
	*m = InvoiceResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Bolt11, n, err = consumeString(typ, b)
		case 2:
			m.PaymentHash, n, err = consumeBytes(typ, b)
		case 3:
			m.PaymentSecret, n, err = consumeBytes(typ, b)
		case 4:
			m.ExpiresAt, n, err = consumeUint64(typ, b)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type ListfundsRequest struct{}

func (m *ListfundsRequest) Marshal() ([]byte, error) { return nil, nil }

func (m *ListfundsRequest) Unmarshal(b []byte) error {
	return decodeFields(b, skip)
}

type ListfundsOutputs struct {
	Txid       []byte
	Output     uint32
	AmountMsat *Amount
	Status     string
}

func (m *ListfundsOutputs) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.Txid)
	b = appendVarint(b, 2, uint64(m.Output))
	b = appendAmount(b, 3, m.AmountMsat)
	b = appendString(b, 4, m.Status)
	return b
}

func (m *ListfundsOutputs) Unmarshal(b []byte) error {
	*m = ListfundsOutputs{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Txid, n, err = consumeBytes(typ, b)
		case 2:
			m.Output, n, err = consumeUint32(typ, b)
		case 3:
			m.AmountMsat, n, err = consumeAmount(typ, b, m.AmountMsat)
		case 4:
			m.Status, n, err = consumeString(typ, b)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type ListfundsChannels struct {
	PeerId        []byte
	OurAmountMsat *Amount
	AmountMsat    *Amount
	FundingTxid   []byte
	FundingOutput uint32
	Connected     bool
}

func (m *ListfundsChannels) appendTo(b []byte) []byte {
	b = appendBytes(b, 1, m.PeerId)
	b = appendAmount(b, 2, m.OurAmountMsat)
	b = appendAmount(b, 3, m.AmountMsat)
	b = appendBytes(b, 4, m.FundingTxid)
	b = appendVarint(b, 5, uint64(m.FundingOutput))
	b = appendBool(b, 6, m.Connected)
	return b
}

func (m *ListfundsChannels) Unmarshal(b []byte) error {
	*m = ListfundsChannels{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.PeerId, n, err = consumeBytes(typ, b)
		case 2:
			m.OurAmountMsat, n, err = consumeAmount(typ, b, m.OurAmountMsat)
		case 3:
			m.AmountMsat, n, err = consumeAmount(typ, b, m.AmountMsat)
		case 4:
			m.FundingTxid, n, err = consumeBytes(typ, b)
		case 5:
			m.FundingOutput, n, err = consumeUint32(typ, b)
		case 6:
			m.Connected, n, err = consumeBool(typ, b)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type ListfundsResponse struct {
	Outputs  []*ListfundsOutputs
	Channels []*ListfundsChannels
}

func (m *ListfundsResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, o := range m.Outputs {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, o.appendTo(nil))
	}
	for _, c := range m.Channels {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, c.appendTo(nil))
	}
	return b, nil
}

func (m *ListfundsResponse) Unmarshal(b []byte) error {
	*m = ListfundsResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return 0, err
			}
			o := &ListfundsOutputs{}
			if err := o.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Outputs = append(m.Outputs, o)
			return n, nil
		case 2:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return 0, err
			}
			c := &ListfundsChannels{}
			if err := c.Unmarshal(v); err != nil {
				return 0, err
			}
			m.Channels = append(m.Channels, c)
			return n, nil
		}
		return skip(num, typ, b)
	})
}

type PayRequest struct {
	Bolt11 string
	// AmountMsat is only sent for invoices without an amount
	AmountMsat *Amount
}

func (m *PayRequest) GetAmountMsat() *Amount {
	if m != nil {
		return m.AmountMsat
	}
	return nil
}

func (m *PayRequest) Marshal() ([]byte, error) {
	var b []byte
	b = appendString(b, 1, m.Bolt11)
	b = appendAmount(b, 2, m.AmountMsat)
	return b, nil
}

func (m *PayRequest) Unmarshal(b []byte) error {
	*m = PayRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Bolt11, n, err = consumeString(typ, b)
		case 2:
			m.AmountMsat, n, err = consumeAmount(typ, b, m.AmountMsat)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}

type PayResponse struct {
	PaymentPreimage []byte
	PaymentHash     []byte
	AmountMsat      *Amount
	AmountSentMsat  *Amount
	Status          string
	Parts           uint32
}

func (m *PayResponse) Marshal() ([]byte, error) {
	var b []byte
	b = appendBytes(b, 1, m.PaymentPreimage)
	b = appendBytes(b, 2, m.PaymentHash)
	b = appendAmount(b, 3, m.AmountMsat)
	b = appendAmount(b, 4, m.AmountSentMsat)
	b = appendString(b, 5, m.Status)
	b = appendVarint(b, 6, uint64(m.Parts))
	return b, nil
}

func (m *PayResponse) Unmarshal(b []byte) error {
	*m = PayResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.PaymentPreimage, n, err = consumeBytes(typ, b)
		case 2:
			m.PaymentHash, n, err = consumeBytes(typ, b)
		case 3:
			m.AmountMsat, n, err = consumeAmount(typ, b, m.AmountMsat)
		case 4:
			m.AmountSentMsat, n, err = consumeAmount(typ, b, m.AmountSentMsat)
		case 5:
			m.Status, n, err = consumeString(typ, b)
		case 6:
			m.Parts, n, err = consumeUint32(typ, b)
		default:
			n, err = skip(num, typ, b)
		}
		return n, err
	})
}
