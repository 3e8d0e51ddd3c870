package pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Amount is the wire form of a monetary amount.
//
// Proto definition (node.proto):
//
//	message Amount {
//	  oneof unit {
//	    uint64 millisatoshi = 1;
//	    uint64 satoshi = 2;
//	    uint64 bitcoin = 3;
//	  }
//	}
//
// There is deliberately no millibitcoin member. A nil Unit means no amount was sent.
type Amount struct {
	// Types that are valid to be assigned to Unit:
	//
	//	*Amount_Millisatoshi
	//	*Amount_Satoshi
	//	*Amount_Bitcoin
	Unit isAmount_Unit
}

type isAmount_Unit interface {
	isAmount_Unit()
}

type Amount_Millisatoshi struct {
	Millisatoshi uint64
}

type Amount_Satoshi struct {
	Satoshi uint64
}

type Amount_Bitcoin struct {
	Bitcoin uint64
}

func (*Amount_Millisatoshi) isAmount_Unit() {}
func (*Amount_Satoshi) isAmount_Unit()      {}
func (*Amount_Bitcoin) isAmount_Unit()      {}

func (m *Amount) GetUnit() isAmount_Unit {
	if m != nil {
		return m.Unit
	}
	return nil
}

func (m *Amount) GetMillisatoshi() uint64 {
	if x, ok := m.GetUnit().(*Amount_Millisatoshi); ok {
		return x.Millisatoshi
	}
	return 0
}

func (m *Amount) GetSatoshi() uint64 {
	if x, ok := m.GetUnit().(*Amount_Satoshi); ok {
		return x.Satoshi
	}
	return 0
}

func (m *Amount) GetBitcoin() uint64 {
	if x, ok := m.GetUnit().(*Amount_Bitcoin); ok {
		return x.Bitcoin
	}
	return 0
}

func (m *Amount) String() string {
	switch u := m.GetUnit().(type) {
	case *Amount_Millisatoshi:
		return fmt.Sprintf("millisatoshi:%d", u.Millisatoshi)
	case *Amount_Satoshi:
		return fmt.Sprintf("satoshi:%d", u.Satoshi)
	case *Amount_Bitcoin:
		return fmt.Sprintf("bitcoin:%d", u.Bitcoin)
	default:
		return "<unset>"
	}
}

func (m *Amount) Marshal() ([]byte, error) {
	return m.appendTo(nil), nil
}

func (m *Amount) appendTo(b []byte) []byte {
	switch u := m.GetUnit().(type) {
	case *Amount_Millisatoshi:
		b = appendUint64(b, 1, u.Millisatoshi)
	case *Amount_Satoshi:
		b = appendUint64(b, 2, u.Satoshi)
	case *Amount_Bitcoin:
		b = appendUint64(b, 3, u.Bitcoin)
	}
	return b
}

func (m *Amount) Unmarshal(b []byte) error {
	m.Unit = nil
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeUint64(typ, b)
			m.Unit = &Amount_Millisatoshi{Millisatoshi: v}
			return n, err
		case 2:
			v, n, err := consumeUint64(typ, b)
			m.Unit = &Amount_Satoshi{Satoshi: v}
			return n, err
		case 3:
			v, n, err := consumeUint64(typ, b)
			m.Unit = &Amount_Bitcoin{Bitcoin: v}
			return n, err
		}
		return skip(num, typ, b)
	})
}
