package bigcodec

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode emits integers with Core Deterministic Encoding (RFC 8949
// §4.2): values that fit in 64 bits as the shortest major type 0/1 integer,
// anything larger as a tag 2/3 bignum with no leading zero bytes.
var cborEncMode cbor.EncMode

var cborDecMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.BigIntConvert = cbor.BigIntConvertShortest
	cborEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("bigcodec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("bigcodec: CBOR decoder initialization failed: " + err.Error())
	}
}

// unmarshalCBORBig decodes one CBOR integer or bignum and insists that data
// is exactly its deterministic encoding.
func unmarshalCBORBig(data []byte) (*big.Int, error) {
	var b big.Int
	if err := cborDecMode.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	canonical, err := cborEncMode.Marshal(&b)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, data) {
		return nil, fmt.Errorf("%w: CBOR integer %x, deterministic form is %x", ErrNonCanonical, data, canonical)
	}
	return &b, nil
}

// MarshalCBOR implements cbor.Marshaler.
func (n Nat) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(n.Big())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (n *Nat) UnmarshalCBOR(data []byte) error {
	b, err := unmarshalCBORBig(data)
	if err != nil {
		return err
	}
	v, err := NatFromBig(b)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (x Int) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(x.Big())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (x *Int) UnmarshalCBOR(data []byte) error {
	b, err := unmarshalCBORBig(data)
	if err != nil {
		return err
	}
	*x = IntFromBig(b)
	return nil
}
