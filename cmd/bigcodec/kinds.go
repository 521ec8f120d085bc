package main

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/oy3o/bigcodec"
)

// value is a decoded or parsed numeric value of any supported kind.
type value interface {
	bigcodec.Codec
	fmt.Stringer
}

// kind describes one value type the tool can encode and decode.
type kind struct {
	name  string
	parse func(text string) (value, error)
	zero  func() value
}

var kinds = map[string]kind{}

func register(k kind) {
	kinds[k.name] = k
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseBig(text string) (*big.Int, error) {
	b, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", text)
	}
	return b, nil
}

func init() {
	register(kind{
		name: "nat",
		parse: func(text string) (value, error) {
			b, err := parseBig(text)
			if err != nil {
				return nil, err
			}
			n, err := bigcodec.NatFromBig(b)
			if err != nil {
				return nil, err
			}
			return &n, nil
		},
		zero: func() value { return new(bigcodec.Nat) },
	})
	register(kind{
		name: "int",
		parse: func(text string) (value, error) {
			b, err := parseBig(text)
			if err != nil {
				return nil, err
			}
			x := bigcodec.IntFromBig(b)
			return &x, nil
		},
		zero: func() value { return new(bigcodec.Int) },
	})
}
