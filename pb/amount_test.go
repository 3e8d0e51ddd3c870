package pb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestAmount_Marshal(t *testing.T) {
	tests := []struct {
		name   string
		amount *Amount
		want   []byte
	}{
		{"unset", &Amount{}, nil},
		{"millisatoshi zero is still sent", &Amount{Unit: &Amount_Millisatoshi{Millisatoshi: 0}}, []byte{0x08, 0x00}},
		{"satoshi", &Amount{Unit: &Amount_Satoshi{Satoshi: 42}}, []byte{0x10, 0x2a}},
		{"bitcoin", &Amount{Unit: &Amount_Bitcoin{Bitcoin: 300}}, []byte{0x18, 0xac, 0x02}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.amount.Marshal()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_Unmarshal(t *testing.T) {
	var a Amount

	assert.NoError(t, a.Unmarshal([]byte{0x10, 0x2a}))
	assert.Equal(t, &Amount_Satoshi{Satoshi: 42}, a.Unit)
	assert.Equal(t, uint64(42), a.GetSatoshi())
	assert.Equal(t, uint64(0), a.GetMillisatoshi())

	assert.NoError(t, a.Unmarshal(nil))
	assert.Nil(t, a.Unit, "empty message leaves the unit absent")

	// last oneof member on the wire wins
	assert.NoError(t, a.Unmarshal([]byte{0x08, 0x01, 0x18, 0x02}))
	assert.Equal(t, &Amount_Bitcoin{Bitcoin: 2}, a.Unit)
}

func TestAmount_UnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer schema")
	b = appendUint64(b, 1, 7)

	var a Amount
	assert.NoError(t, a.Unmarshal(b))
	assert.Equal(t, &Amount_Millisatoshi{Millisatoshi: 7}, a.Unit)

	// an unknown member alone decodes to an absent unit, callers must reject it
	assert.NoError(t, a.Unmarshal(b[:len(b)-2]))
	assert.Nil(t, a.Unit)
}

func TestAmount_UnmarshalMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"truncated varint", []byte{0x08, 0x80}},
		{"wrong wire type", []byte{0x0a, 0x01, 0x00}},
		{"bad tag", []byte{0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := a.Unmarshal(tt.in)
			assert.True(t, errors.Is(err, ErrMalformed), "error = %v", err)
		})
	}
}

func TestAmount_NilGetters(t *testing.T) {
	var a *Amount
	assert.Nil(t, a.GetUnit())
	assert.Equal(t, uint64(0), a.GetBitcoin())
	assert.Equal(t, "<unset>", a.String())
	assert.Equal(t, "satoshi:5", (&Amount{Unit: &Amount_Satoshi{Satoshi: 5}}).String())
}
