// bigcodec encodes and decodes canonical numeric values from the command
// line. It is a debugging aid for payloads produced by the bigcodec
// package.
//
//	bigcodec encode --type int -- -5        # 000105
//	bigcodec decode --type int 000105       # -5
//	bigcodec decode --type nat 020500       # error: non-canonical encoding
//	bigcodec decode --prefix --type int 01ff
//
// Values are read as decimal, or with a 0x/0o/0b prefix. --cbor switches
// nat and int to their RFC 8949 integer/bignum form and cannot be combined
// with --prefix. The decimal type is available when built with
// -tags decimal.
package main
