// SPDX-License-Identifier: MIT

// Package matrix - text serialization of Dense.
//
// Format (bit-exact on export):
//
//	MatrixDense
//	<rows> <cols>
//	<e00> <e01> ... <e0,cols-1>
//	...
//
// Purpose:
//   - Encode writes single spaces between values and one row per line.
//   - Decode is tolerant of any whitespace layout and atomic: it either
//     returns a fully populated matrix or an error, never a partial result.
//   - File helpers open the handle immediately before use and close it on
//     every exit path.
//
// Floats are written with the shortest representation that parses back to
// the same bits, so Decode(Encode(m)) reproduces m exactly for every T.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

// TypeTag is the header token identifying a serialized Dense.
const TypeTag = "MatrixDense"

// MaxElements caps rows*cols accepted by Decode.
const MaxElements = 1 << 26

const (
	opEncode = "Encode"
	opDecode = "Decode"
	opExport = "ExportFile"
	opImport = "ImportFile"
)

// elemCodec formats and parses one element type. Chosen once per call by kind.
type elemCodec[T Number] struct {
	format func(v T) string
	parse  func(tok string) (T, error)
}

// codecFor picks the strconv routines matching T's underlying kind and size.
// Named types resolve through their kind, so `type Celsius float64` works.
func codecFor[T Number]() elemCodec[T] {
	var zero T
	rt := reflect.TypeOf(zero)
	bits := rt.Bits()

	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		return elemCodec[T]{
			format: func(v T) string { return strconv.FormatFloat(float64(v), 'g', -1, bits) },
			parse: func(tok string) (T, error) {
				f, err := strconv.ParseFloat(tok, bits)
				return T(f), err
			},
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return elemCodec[T]{
			format: func(v T) string { return strconv.FormatUint(uint64(v), 10) },
			parse: func(tok string) (T, error) {
				u, err := strconv.ParseUint(tok, 10, bits)
				return T(u), err
			},
		}
	default: // signed integers
		return elemCodec[T]{
			format: func(v T) string { return strconv.FormatInt(int64(v), 10) },
			parse: func(tok string) (T, error) {
				n, err := strconv.ParseInt(tok, 10, bits)
				return T(n), err
			},
		}
	}
}

// ioErrorf joins ErrIO with the underlying cause so both match via errors.Is.
func ioErrorf(op, path string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, path, ErrIO, err)
}

// formatErrorf tags a decoding failure with ErrFormat and a position hint.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", opDecode, ErrFormat, fmt.Sprintf(format, args...))
}

// Encode writes m to w in the MatrixDense text format.
//
// Implementation:
//   - Stage 1: header line and "rows cols".
//   - Stage 2: one line per row, values joined by a single space.
//   - Stage 3: flush the buffered writer.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrIO (joined with the writer error) when w fails.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the bufio buffer.
func Encode[T Number](w io.Writer, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	ec := codecFor[T]()
	bw := bufio.NewWriter(w)

	// Writes to bufio are sticky on error; check once at Flush.
	_, _ = bw.WriteString(TypeTag)
	_ = bw.WriteByte('\n')
	_, _ = bw.WriteString(strconv.Itoa(m.r))
	_ = bw.WriteByte(' ')
	_, _ = bw.WriteString(strconv.Itoa(m.c))
	_ = bw.WriteByte('\n')

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(ec.format(m.data[base+j]))
		}
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w: %w", opEncode, ErrIO, err)
	}

	return nil
}

// WriteTo implements io.WriterTo by encoding m in the MatrixDense text format.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := Encode(cw, m)

	return cw.n, err
}

// countingWriter tracks bytes forwarded to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// Decode reads a MatrixDense document from r.
//
// Implementation:
//   - Stage 1: scan whitespace-separated tokens; the first must equal TypeTag.
//   - Stage 2: parse rows and cols as positive integers; guard rows*cols.
//   - Stage 3: parse exactly rows*cols elements in row-major order.
//
// Behavior highlights:
//   - Any whitespace layout is accepted; tokens after the last element are ignored.
//   - Integer T rejects fractional tokens ("1.5") and values out of range for its size.
//   - Atomic: on error the returned matrix is nil.
//
// Errors:
//   - ErrFormat for wrong tag, bad/oversized dimensions, truncation, non-numeric
//     tokens or a token longer than bufio.MaxScanTokenSize.
//   - ErrIO when the reader itself fails.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Decode[T Number](r io.Reader) (*Dense[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// next returns the following token, or ("", false) at EOF/read error.
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	// eof reports a reader failure as ErrIO; exhaustion and oversized tokens are ErrFormat.
	eof := func(what string) error {
		err := sc.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return formatErrorf("token too long reading %s", what)
		}
		if err != nil {
			return fmt.Errorf("%s: %w: %w", opDecode, ErrIO, err)
		}
		return formatErrorf("unexpected end of input reading %s", what)
	}

	tag, ok := next()
	if !ok {
		return nil, eof("type tag")
	}
	if tag != TypeTag {
		return nil, formatErrorf("type tag %q, want %q", tag, TypeTag)
	}

	var dims [2]int
	for d, name := range [2]string{"rows", "cols"} {
		tok, ok := next()
		if !ok {
			return nil, eof(name)
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, formatErrorf("%s %q: %v", name, tok, err)
		}
		if n <= 0 {
			return nil, formatErrorf("%s %d: %v", name, n, ErrInvalidDimensions)
		}
		dims[d] = n
	}
	rows, cols := dims[0], dims[1]
	if rows > MaxElements/cols {
		return nil, formatErrorf("%dx%d exceeds %d elements", rows, cols, MaxElements)
	}

	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, formatErrorf("%v", err)
	}
	ec := codecFor[T]()
	for idx := range m.data {
		i, j := idx/cols, idx%cols
		tok, ok := next()
		if !ok {
			return nil, eof(fmt.Sprintf("element (%d,%d)", i, j))
		}
		v, err := ec.parse(tok)
		if err != nil {
			return nil, formatErrorf("element (%d,%d) %q: %v", i, j, tok, unwrapNumErr(err))
		}
		m.data[idx] = v
	}

	return m, nil
}

// unwrapNumErr strips the strconv.NumError envelope, which repeats the token.
func unwrapNumErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}

// ExportFile creates or truncates path and writes m in the MatrixDense format.
// The file is closed on every exit path; a failing Close is reported.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrIO when the file cannot be created, written or closed.
func ExportFile[T Number](path string, m *Dense[T]) (err error) {
	if err = ValidateNotNil(m); err != nil {
		return matrixErrorf(opExport, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opExport, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opExport, path, cerr)
		}
	}()

	if err = Encode(f, m); err != nil {
		return fmt.Errorf("%s %q: %w", opExport, path, err)
	}

	return nil
}

// ImportFile opens path and decodes a MatrixDense document from it.
// The file is closed before returning on every path.
//
// Errors:
//   - ErrIO when the file cannot be opened or read.
//   - ErrFormat as documented on Decode.
func ImportFile[T Number](path string) (*Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opImport, path, err)
	}
	defer f.Close()

	m, err := Decode[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opImport, path, err)
	}

	return m, nil
}
