// tdata - tagged value record CLI tool
//
// Usage:
//
//	tdata encode [--kind=<kind>] [file]    JSON lines -> concatenated records
//	tdata decode [--json] [file]           Records -> one value per line
//	tdata inspect [file]                   Records -> offset/kind table
//	tdata version                          Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/Neumenon/tdata/tdata"
)

const libVersion = "0.1.0"

const usage = `tdata - tagged value record codec

Usage:
  tdata encode [--kind=<kind>] [-v] [<file>]
  tdata decode [--json] [--offset=<n>] [-v] [<file>]
  tdata inspect [--offset=<n>] [-v] [<file>]
  tdata version
  tdata -h | --help

Options:
  -h --help        Show this screen.
  --kind=<kind>    Read each line as a bare JSON value of this kind
                   (int64, real64, str, vec_int64, vec_real64, vec_str).
  --json           Print decoded values as JSON lines.
  --offset=<n>     Byte offset of the first record [default: 0].
  -v --verbose     Log decoder diagnostics to stderr.

Without --kind, encode reads one JSON value object per line:
  {"kind":"vec_int64","value":[1,2,3]}

Examples:
  echo '{"kind":"int64","value":42}' | tdata encode
  # Output: ^i42$

  printf '^i42$^shi$^I3:1:2:3$' | tdata decode
  # Output:
  # int64(42)
  # str("hi")
  # vec_int64[1 2 3]
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], "")
	if err != nil {
		fatal("parse args: %v", err)
	}

	if flag(opts, "--verbose") {
		l, err := zap.NewDevelopment()
		if err != nil {
			fatal("init logger: %v", err)
		}
		defer l.Sync()
		tdata.SetLogger(l)
	}

	var input io.Reader = os.Stdin
	if file := arg(opts, "<file>"); file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	offset := 0
	if s := arg(opts, "--offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			fatal("invalid --offset %q", s)
		}
	}

	switch {
	case flag(opts, "encode"):
		err = cmdEncode(input, os.Stdout, arg(opts, "--kind"))
	case flag(opts, "decode"):
		err = cmdDecode(input, os.Stdout, offset, flag(opts, "--json"))
	case flag(opts, "inspect"):
		err = cmdInspect(input, os.Stdout, offset)
	case flag(opts, "version"):
		fmt.Printf("tdata %s\n", libVersion)
	}
	if err != nil {
		fatal("%v", err)
	}
}

// cmdEncode: JSON lines -> concatenated records
func cmdEncode(r io.Reader, w io.Writer, kindName string) error {
	var kind tdata.Kind
	if kindName != "" {
		k, ok := tdata.ParseKind(kindName)
		if !ok || k == tdata.KindUnbound {
			return fmt.Errorf("unknown kind %q", kindName)
		}
		kind = k
	}

	var buf []byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var v tdata.Value
		if kind != tdata.KindUnbound {
			p, err := tdata.PayloadFromJSON(kind, line)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			v = tdata.New(p)
		} else {
			var err error
			if v, err = tdata.FromJSON(line); err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
		buf = v.AppendTo(buf)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	_, err := w.Write(buf)
	return err
}

// cmdDecode: records -> one value per line
func cmdDecode(r io.Reader, w io.Writer, offset int, asJSON bool) error {
	buf, err := readRecords(r)
	if err != nil {
		return err
	}

	dec := tdata.NewDecoder(buf, tdata.WithOffset(offset))
	for {
		var v tdata.Value
		if !dec.Next(&v) {
			break
		}
		if asJSON {
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("record %d: %w", dec.Count(), err)
			}
			fmt.Fprintln(w, string(data))
		} else {
			fmt.Fprintln(w, v)
		}
	}
	return dec.Err()
}

// cmdInspect: records -> offset/kind table
func cmdInspect(r io.Reader, w io.Writer, offset int) error {
	buf, err := readRecords(r)
	if err != nil {
		return err
	}

	data := pterm.TableData{
		{"#", "offset", "kind", "len", "record"}}

	dec := tdata.NewDecoder(buf, tdata.WithOffset(offset))
	for {
		start := dec.Offset()
		var v tdata.Value
		if !dec.Next(&v) {
			break
		}
		record := string(buf[start:dec.Offset()])
		if len(record) > 60 {
			record = record[:60] + "..."
		}
		data = append(data, []string{
			strconv.Itoa(dec.Count()),
			strconv.Itoa(start),
			v.Kind().String(),
			strconv.Itoa(dec.Offset() - start),
			record})
	}

	table, rerr := pterm.DefaultTable.WithHasHeader(true).WithData(data).Srender()
	if rerr != nil {
		return fmt.Errorf("render table: %w", rerr)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "%d records, %d of %d bytes\n", dec.Count(), dec.Offset(), len(buf))
	return dec.Err()
}

// readRecords reads a whole record buffer, dropping a trailing newline left
// by shells and editors.
func readRecords(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return bytes.TrimRight(buf, "\r\n"), nil
}

func flag(opts docopt.Opts, key string) bool {
	b, _ := opts[key].(bool)
	return b
}

func arg(opts docopt.Opts, key string) string {
	s, _ := opts[key].(string)
	return strings.TrimSpace(s)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
