//go:build decimal

package main

import "github.com/oy3o/bigcodec/decimal"

func init() {
	register(kind{
		name: "decimal",
		parse: func(text string) (value, error) {
			d, err := decimal.Parse(text)
			if err != nil {
				return nil, err
			}
			return &d, nil
		},
		zero: func() value { return new(decimal.Decimal) },
	})
}
