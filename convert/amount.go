// Package convert maps monetary amounts between the gRPC wire representation
// (pb.Amount) and the lightningd JSON-RPC representation (lightningd.Amount).
//
// The two unions are not the same shape: lightningd knows millibitcoin, the
// wire does not. Millibitcoin is narrowed to satoshi on the way out and comes
// back as satoshi, never as millibitcoin.
package convert

import (
	"errors"
	"fmt"
	"math/bits"

	"go-cln-grpc-proxy/lightningd"
	"go-cln-grpc-proxy/pb"
)

// SatoshiPerMillibitcoin scale factor from millibitcoin to satoshi
const SatoshiPerMillibitcoin = 100_000

var (
	// ErrUnsupportedUnit the amount has no unit or one with no counterpart on the other side
	ErrUnsupportedUnit = errors.New("unsupported amount unit")

	// ErrOverflow scaling the amount does not fit in 64 bits
	ErrOverflow = errors.New("amount overflows uint64")
)

// ToExternal converts a lightningd amount to its wire form.
func ToExternal(a lightningd.Amount) (*pb.Amount, error) {
	switch v := a.(type) {
	case lightningd.Millisatoshi:
		return &pb.Amount{Unit: &pb.Amount_Millisatoshi{Millisatoshi: uint64(v)}}, nil
	case lightningd.Satoshi:
		return &pb.Amount{Unit: &pb.Amount_Satoshi{Satoshi: uint64(v)}}, nil
	case lightningd.Millibitcoin:
		hi, sat := bits.Mul64(uint64(v), SatoshiPerMillibitcoin)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d millibitcoin in satoshi", ErrOverflow, uint64(v))
		}
		return &pb.Amount{Unit: &pb.Amount_Satoshi{Satoshi: sat}}, nil
	case lightningd.Bitcoin:
		return &pb.Amount{Unit: &pb.Amount_Bitcoin{Bitcoin: uint64(v)}}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedUnit, a)
	}
}

// ToInternal converts a wire amount to the lightningd form.
// A nil amount or one without a unit is rejected rather than read as zero.
func ToInternal(a *pb.Amount) (lightningd.Amount, error) {
	switch u := a.GetUnit().(type) {
	case *pb.Amount_Millisatoshi:
		return lightningd.Millisatoshi(u.Millisatoshi), nil
	case *pb.Amount_Satoshi:
		return lightningd.Satoshi(u.Satoshi), nil
	case *pb.Amount_Bitcoin:
		return lightningd.Bitcoin(u.Bitcoin), nil
	case nil:
		return nil, fmt.Errorf("%w: unit not set", ErrUnsupportedUnit)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedUnit, u)
	}
}
