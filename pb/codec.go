package pb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype for the node messages.
// Clients select it with grpc.CallContentSubtype(CodecName).
const CodecName = "cln"

// Message is implemented by every node message.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec is a gRPC codec for values implementing Message.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("cln codec: cannot marshal %T", v)
	}
	return m.Marshal()
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("cln codec: cannot unmarshal into %T", v)
	}
	return m.Unmarshal(data)
}

func (Codec) Name() string {
	return CodecName
}
