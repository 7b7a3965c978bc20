// huffstr - text Huffman codec CLI tool
//
// Usage:
//
//	huffstr [-dump] encode [file]   Encode bytes into a transportable string
//	huffstr [-dump] decode [file]   Decode a transportable string
//
// If no file is given, or file is "-", reads from stdin.  With -dump, the
// code tree is written to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	huffman "github.com/chronos-tachyon/texthuffman"
)

var errUsage = errors.New("usage: huffstr [-dump] encode|decode [file]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fatal("%v", err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("huffstr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dump := fs.Bool("dump", false, "write the code tree to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return errUsage
	}

	data, err := readInput(fs.Arg(1), stdin)
	if err != nil {
		return err
	}

	var dumpTo io.Writer
	if *dump {
		dumpTo = stderr
	}

	switch cmd := fs.Arg(0); cmd {
	case "encode":
		return runEncode(data, stdout, dumpTo)
	case "decode":
		return runDecode(data, stdout, dumpTo)
	default:
		return fmt.Errorf("unknown command %q\n%v", cmd, errUsage)
	}
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := ioutil.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	data, err := ioutil.ReadAll(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func runEncode(data []byte, w io.Writer, dump io.Writer) error {
	var e huffman.Encoder
	if err := e.Init(data); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if dump != nil {
		_, _ = e.Dump(dump)
	}
	out, err := e.Encode(data)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runDecode(data []byte, w io.Writer, dump io.Writer) error {
	s := strings.TrimRight(string(data), "\r\n")
	out, err := huffman.Decode(s)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if dump != nil {
		_, n, _ := huffman.DeserializeTree(s)
		var d huffman.Decoder
		if err := d.Init(s[:n]); err == nil {
			_, _ = d.Dump(dump)
		}
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "huffstr: "+format+"\n", args...)
	os.Exit(1)
}
