//go:build decimal

// Package decimal adds an arbitrary-precision decimal to the bigcodec
// integer codecs. It is compiled only with the "decimal" build tag so that
// integer-only consumers do not link it or its apd dependency.
//
// A Decimal is an unscaled bigcodec.Int and a signed 64-bit exponent. The
// numeric value is
//
//	unscaled × 10^(-exponent)
//
// so 1.23 is (123, 2) and 1200 is (12, -2). This convention is layered on
// top of the wire format; the encoding itself only fixes the pair. Decimals
// are not normalized: (10, 1) and (1, 0) are both 1 and encode differently.
//
// # Encoding
//
// The unscaled integer in its canonical bigcodec form, followed by the
// zigzag transform of the exponent as an unsigned varint:
//
//	sign ++ [varint(len) ++ digits] ++ varint(zigzag(exponent))
//
// For example -1.5 is (-15, 1):
//
//	0x00 0x01 0x0f 0x02
package decimal
