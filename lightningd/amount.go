package lightningd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when an amount from lightningd can not be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount a monetary amount as understood by lightningd. The concrete type is the unit.
//
// Amount is sealed: the only implementations are Millisatoshi, Satoshi, Millibitcoin and Bitcoin.
type Amount interface {
	fmt.Stringer
	isAmount()
}

// Millisatoshi an amount in millisatoshi
type Millisatoshi uint64

// Satoshi an amount in satoshi
type Satoshi uint64

// Millibitcoin an amount in millibitcoin
type Millibitcoin uint64

// Bitcoin an amount in whole bitcoin
type Bitcoin uint64

func (Millisatoshi) isAmount() {}
func (Satoshi) isAmount()      {}
func (Millibitcoin) isAmount() {}
func (Bitcoin) isAmount()      {}

func (a Millisatoshi) String() string { return strconv.FormatUint(uint64(a), 10) + "msat" }
func (a Satoshi) String() string      { return strconv.FormatUint(uint64(a), 10) + "sat" }
func (a Bitcoin) String() string      { return strconv.FormatUint(uint64(a), 10) + "btc" }

// String renders a Millibitcoin as decimal bitcoin since lightningd has no mbtc suffix.
func (a Millibitcoin) String() string {
	return fmt.Sprintf("%d.%03dbtc", uint64(a)/1000, uint64(a)%1000)
}

// ParseAmount parses an amount the way lightningd writes and accepts them.
// A plain number is millisatoshi, as is a bitcoin amount with a fractional part.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)

	// longest suffix first, "msat" also ends in "sat"
	suffixes := []struct {
		suffix string
		build  func(uint64) Amount
	}{
		{"msat", func(v uint64) Amount { return Millisatoshi(v) }},
		{"sat", func(v uint64) Amount { return Satoshi(v) }},
		{"mbtc", func(v uint64) Amount { return Millibitcoin(v) }},
		{"btc", func(v uint64) Amount { return Bitcoin(v) }},
	}
	// decimal bitcoin is only exact in millisatoshi
	if strings.HasSuffix(s, "btc") && !strings.HasSuffix(s, "mbtc") {
		if whole, frac, ok := strings.Cut(strings.TrimSuffix(s, "btc"), "."); ok {
			msat, err := parseDecimalBitcoin(whole, frac)
			if err != nil {
				return nil, fmt.Errorf("%w [%v]: %v", ErrInvalidAmount, s, err)
			}
			return msat, nil
		}
	}

	for _, u := range suffixes {
		if strings.HasSuffix(s, u.suffix) {
			v, err := strconv.ParseUint(strings.TrimSuffix(s, u.suffix), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w [%v]: %v", ErrInvalidAmount, s, err)
			}
			return u.build(v), nil
		}
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]: %v", ErrInvalidAmount, s, err)
	}
	return Millisatoshi(v), nil
}

// millisatoshiPerBitcoin 10^11, so decimal bitcoin has at most 11 fractional digits
const millisatoshiPerBitcoin = 100_000_000_000

// parseDecimalBitcoin converts the two halves of "<whole>.<frac>btc" into millisatoshi.
func parseDecimalBitcoin(whole, frac string) (Millisatoshi, error) {
	if whole == "" || frac == "" {
		return 0, errors.New("malformed decimal")
	}
	if len(frac) > 11 {
		return 0, errors.New("more precise than a millisatoshi")
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseUint(frac+strings.Repeat("0", 11-len(frac)), 10, 64)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(w, millisatoshiPerBitcoin)
	sum, carry := bits.Add64(lo, f, 0)
	if hi != 0 || carry != 0 {
		return 0, errors.New("out of range")
	}
	return Millisatoshi(sum), nil
}

// AmountField carries an Amount through JSON. lightningd writes amounts either as
// an integer number of millisatoshi or as a string with a unit suffix.
type AmountField struct {
	Amount Amount
}

// MarshalJSON writes the amount in its suffixed string form.
func (f AmountField) MarshalJSON() ([]byte, error) {
	if f.Amount == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.Amount.String())
}

// UnmarshalJSON accepts both the integer and the string forms.
func (f *AmountField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		f.Amount = nil
		return nil
	}

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decoding amount: %w", err)
		}
	} else {
		s = string(b)
	}

	amount, err := ParseAmount(s)
	if err != nil {
		return err
	}
	f.Amount = amount
	return nil
}
