package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCommand(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestEncode(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		want string
	}{
		{"Int", []string{"encode", "5"}, "020105\n"},
		{"NegativeInt", []string{"encode", "--", "-5"}, "000105\n"},
		{"Zero", []string{"encode", "0"}, "01\n"},
		{"Nat", []string{"encode", "--type", "nat", "256"}, "020001\n"},
		{"NatZero", []string{"encode", "-t", "nat", "0"}, "00\n"},
		{"Hex", []string{"encode", "0xff"}, "0201ff\n"},
		{"CBOR", []string{"encode", "--cbor", "24"}, "1818\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(tc.args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestDecode(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		want string
	}{
		{"Int", []string{"decode", "000105"}, "-5\n"},
		{"SpacedHex", []string{"decode", "00", "01 05"}, "-5\n"},
		{"Nat", []string{"decode", "-t", "nat", "0105"}, "5\n"},
		{"CBOR", []string{"decode", "--cbor", "24"}, "-5\n"},
		{"Prefix", []string{"decode", "--prefix", "010105"}, "0\nconsumed 1 bytes, remaining 0105\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(tc.args...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		msg  string
	}{
		{"PaddedMagnitude", []string{"decode", "-t", "nat", "020500"}, "non-canonical"},
		{"TrailingData", []string{"decode", "010105"}, "trailing data"},
		{"BadSign", []string{"decode", "03"}, "invalid sign byte"},
		{"Truncated", []string{"decode", "02"}, "truncated"},
		{"CBORNotShortest", []string{"decode", "--cbor", "1805"}, "non-canonical"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCommand(tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.msg)
		})
	}
}

func TestUsage(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		code int
	}{
		{"NoArgs", nil, 2},
		{"UnknownCommand", []string{"frobnicate"}, 2},
		{"UnknownFlag", []string{"encode", "--nope", "1"}, 2},
		{"UnknownType", []string{"encode", "-t", "float", "1"}, 2},
		{"TooManyValues", []string{"encode", "1", "2"}, 2},
		{"NoHex", []string{"decode"}, 2},
		{"BadHex", []string{"decode", "zz"}, 2},
		{"CBORWithPrefix", []string{"decode", "--cbor", "--prefix", "05"}, 2},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCommand(tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, stderr, "bigcodec encode", "usage or error goes to stderr")
		})
	}

	t.Run("Help", func(t *testing.T) {
		code, stdout, _ := runCommand("help")
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "--type")

		code, stdout, _ = runCommand("encode", "--help")
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "Usage:")
	})
}

func TestValueErrors(t *testing.T) {
	code, _, stderr := runCommand("encode", "twelve")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `invalid integer "twelve"`)

	code, _, stderr = runCommand("encode", "-t", "nat", "--", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "negative value")
}

func TestVerboseLogging(t *testing.T) {
	code, stdout, stderr := runCommand("encode", "-v", "5")
	assert.Equal(t, 0, code)
	assert.Equal(t, "020105\n", stdout)
	assert.True(t, strings.Contains(stderr, "msg=encoded"), stderr)
	assert.Contains(t, stderr, "size=3")

	_, _, stderr = runCommand("encode", "5")
	assert.Empty(t, stderr)
}
