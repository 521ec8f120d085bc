package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/pflag"

	"github.com/oy3o/bigcodec"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command-line flags.
type options struct {
	kind    string
	cbor    bool
	prefix  bool
	verbose bool
}

// usageError marks failures that should print usage and exit 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr, nil)
		return 2
	}
	command, args := args[0], args[1:]

	var opts options
	flagSet := pflag.NewFlagSet("bigcodec "+command, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&opts.kind, "type", "t", "int", "value type: "+strings.Join(kindNames(), ", "))
	flagSet.BoolVar(&opts.cbor, "cbor", false, "use the CBOR integer/bignum form instead of the binary codec")
	flagSet.BoolVar(&opts.prefix, "prefix", false, "decode: read one value from the front and report the rest")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	switch command {
	case "help", "-h", "--help":
		printUsage(stdout, flagSet)
		return 0
	case "encode", "decode":
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n", command)
		printUsage(stderr, flagSet)
		return 2
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flagSet)
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr, flagSet)
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if command == "encode" {
		err = encodeCommand(logger, stdout, opts, flagSet.Args())
	} else {
		err = decodeCommand(logger, stdout, opts, flagSet.Args())
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var usage usageError
		if errors.As(err, &usage) {
			printUsage(stderr, flagSet)
			return 2
		}
		return 1
	}
	return 0
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return kind{}, usagef("unknown type %q, want one of: %s", name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

func encodeCommand(logger *slog.Logger, w io.Writer, opts options, args []string) error {
	if len(args) != 1 {
		return usagef("encode takes exactly one value, got %d", len(args))
	}
	k, err := lookupKind(opts.kind)
	if err != nil {
		return err
	}
	v, err := k.parse(args[0])
	if err != nil {
		return err
	}

	var data []byte
	if opts.cbor {
		m, ok := v.(cbor.Marshaler)
		if !ok {
			return usagef("type %s has no CBOR form", k.name)
		}
		data, err = m.MarshalCBOR()
	} else {
		data, err = v.MarshalBinary()
	}
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", k.name, args[0], err)
	}

	logger.Debug("encoded", "type", k.name, "value", v.String(), "size", len(data), "cbor", opts.cbor)
	_, err = fmt.Fprintln(w, hex.EncodeToString(data))
	return err
}

func decodeCommand(logger *slog.Logger, w io.Writer, opts options, args []string) error {
	if len(args) == 0 {
		return usagef("decode takes hex input")
	}
	k, err := lookupKind(opts.kind)
	if err != nil {
		return err
	}
	// Accept "00 01 05" as well as "000105".
	data, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(args, " ")), ""))
	if err != nil {
		return usagef("invalid hex input: %v", err)
	}

	if opts.cbor && opts.prefix {
		return usagef("--cbor and --prefix cannot be combined")
	}

	v := k.zero()
	switch {
	case opts.cbor:
		u, ok := v.(cbor.Unmarshaler)
		if !ok {
			return usagef("type %s has no CBOR form", k.name)
		}
		err = u.UnmarshalCBOR(data)
	case opts.prefix:
		r := bigcodec.NewBytesReader(data)
		if err = v.Decode(r); err == nil {
			logger.Debug("decoded prefix", "type", k.name, "consumed", r.N, "remaining", r.Available())
			_, err = fmt.Fprintf(w, "%s\nconsumed %d bytes, remaining %x\n", v, r.N, r.Remaining())
			return err
		}
	default:
		err = v.UnmarshalBinary(data)
	}
	if err != nil {
		return fmt.Errorf("decode %s %x: %w", k.name, data, err)
	}

	logger.Debug("decoded", "type", k.name, "size", len(data), "cbor", opts.cbor)
	_, err = fmt.Fprintln(w, v.String())
	return err
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `bigcodec encodes and decodes canonical numeric values.

Usage:
  bigcodec encode [flags] VALUE
  bigcodec decode [flags] HEX

Types: %s

`, strings.Join(kindNames(), ", "))
	if flagSet != nil {
		fmt.Fprintf(w, "Flags:\n%s", flagSet.FlagUsages())
	}
}
