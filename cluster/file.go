// SPDX-License-Identifier: MIT

package cluster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// appendRecords appends one line per record to path in a single open/close.
// Records whose line contains a line break are rejected before the file is
// touched, so the layout stays one record per line.
func appendRecords(path string, recs ...Record) (err error) {
	var b strings.Builder
	for _, r := range recs {
		line := r.Line()
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("export %q: %q contains a line break: %w", path, line, ErrFormat)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("export %q: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export %q: %w: %w", path, ErrIO, cerr)
		}
	}()

	if _, err = io.WriteString(f, b.String()); err != nil {
		return fmt.Errorf("export %q: %w: %w", path, ErrIO, err)
	}

	return nil
}

// readLines opens path and returns its first n lines.
// Fewer than n lines yields ErrFormat.
func readLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	lines, err := scanLines(f, n)
	if err != nil {
		return nil, fmt.Errorf("import %q: %w", path, err)
	}

	return lines, nil
}

// scanLines reads exactly n lines from r.
func scanLines(r io.Reader, n int) ([]string, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, n)
	for len(lines) < n && sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(lines) < n {
		return nil, fmt.Errorf("got %d of %d lines: %w", len(lines), n, ErrFormat)
	}

	return lines, nil
}
